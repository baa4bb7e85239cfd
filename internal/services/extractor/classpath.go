package extractor

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BuildClasspath assembles the java classpath from the primary JAR and
// every .jar found under libDir, walked recursively. The primary JAR is
// always first. A missing or empty libDir yields a classpath of just the
// primary JAR, matching a standalone fat-JAR layout.
func BuildClasspath(jarPath, libDir string) string {
	jars := []string{jarPath}

	if libDir != "" {
		if info, err := os.Stat(libDir); err == nil && info.IsDir() {
			filepath.WalkDir(libDir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					// Skip unreadable entries rather than failing the request
					return nil
				}
				if !d.IsDir() && strings.HasSuffix(d.Name(), ".jar") {
					jars = append(jars, path)
				}
				return nil
			})
		}
	}

	return strings.Join(jars, string(os.PathListSeparator))
}
