package security

import "testing"

func TestCheckPath(t *testing.T) {
	cases := map[string]Offense{
		"index.html":                OffenseNone,
		"sub/dir/index.html":        OffenseNone,
		"../../../etc/passwd":       OffensePathTraversal,
		`..\..\windows\system32`:    OffensePathTraversal,
		"/etc/passwd":               OffenseAbsolutePath,
		`\windows\system32`:         OffenseAbsolutePath,
		`C:\windows\system32`:       OffenseAbsolutePath,
		"http://evil.example/x":     OffenseExternalURL,
		"https://evil.example/x":    OffenseExternalURL,
		"//evil.example/x":          OffenseExternalURL,
		"bad\x00name.html":          OffenseNullByte,
	}
	for input, want := range cases {
		if got := CheckPath(input); got != want {
			t.Errorf("CheckPath(%q) = %q, want %q", input, got, want)
		}
	}
}
