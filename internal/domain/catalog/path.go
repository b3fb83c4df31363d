package catalog

import "strings"

// PathSeparator канонический разделитель сегментов пути.
const PathSeparator = " / "

// SplitPath режет путь по "/" (с любыми пробелами вокруг) и выкидывает пустые сегменты.
func SplitPath(raw string) []string {
	parts := strings.Split(raw, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NormalizePath приводит путь к виду "A / B / C"; пустой путь остаётся "".
func NormalizePath(raw string) string {
	return strings.Join(SplitPath(raw), PathSeparator)
}
