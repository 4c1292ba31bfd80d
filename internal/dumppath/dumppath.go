// Package dumppath interprets a JVM heap dump path directive and derives
// the filename patterns used for rotation and retention. It is pure string
// and pattern logic with no filesystem access.
package dumppath

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ArgPrefix is the launch argument that configures the heap dump location.
const ArgPrefix = "-XX:HeapDumpPath="

// PIDToken is replaced by the JVM with its process id when writing the dump.
const PIDToken = "%p"

// Spec describes a configured heap dump path.
type Spec struct {
	Dir      string // containing directory
	FileName string // filename portion, may contain PIDToken
	Base     string // FileName without extension
	Ext      string // extension including the dot, empty if none
}

// FromArgs scans launch arguments in order and parses the first heap dump
// path directive. The second return value is false when none is present,
// which means rotation is simply not configured.
func FromArgs(args []string) (Spec, bool) {
	for _, arg := range args {
		if strings.HasPrefix(arg, ArgPrefix) {
			raw := strings.TrimPrefix(arg, ArgPrefix)
			if raw == "" {
				continue
			}
			return Parse(raw), true
		}
	}
	return Spec{}, false
}

// Parse splits a raw dump path into its spec parts. A path without a parent
// resolves to the current working directory.
func Parse(raw string) Spec {
	name := filepath.Base(raw)
	ext := filepath.Ext(name)

	return Spec{
		Dir:      filepath.Dir(raw),
		FileName: name,
		Base:     strings.TrimSuffix(name, ext),
		Ext:      ext,
	}
}

// ExactPattern matches a freshly written, not yet rotated dump file. Each
// PIDToken in the configured filename matches one or more digits; without a
// token the pattern is the literal filename.
func (s Spec) ExactPattern() *regexp.Regexp {
	return regexp.MustCompile("^" + digitJoin(s.FileName) + "$")
}

// RotatedPattern matches files this rotator has already renamed: the base
// name, a hyphen, the epoch-seconds suffix, then the original extension.
func (s Spec) RotatedPattern() *regexp.Regexp {
	return regexp.MustCompile("^" + digitJoin(s.Base) + `-\d+` + regexp.QuoteMeta(s.Ext) + "$")
}

// digitJoin escapes the literal segments around each PIDToken and joins
// them with a one-or-more-digits wildcard.
func digitJoin(name string) string {
	segments := strings.Split(name, PIDToken)
	for i, seg := range segments {
		segments[i] = regexp.QuoteMeta(seg)
	}
	return strings.Join(segments, `\d+`)
}
