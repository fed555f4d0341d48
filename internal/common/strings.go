package common

import "strings"

func StringsIndexOf(hay []string, needle string) int {
	needle = strings.ToLower(needle)
	for i, s := range hay {
		if strings.ToLower(s) == needle {
			return i
		}
	}
	return -1
}

func IsInList(hay []string, needle string) bool {
	return StringsIndexOf(hay, needle) >= 0
}

// LowerSlice lowercases and trims in place, YMMV
func LowerSlice(s []string) []string {
	for i, v := range s {
		s[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return s
}
