package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		name    string
		offerNo int64
		info    string
		want    string
	}{
		{"no customer info", 42, "", "Tilbud-42.pdf"},
		{"plain name", 42, "Ola Nordmann\nVeien 1", "Tilbud-42-Ola Nordmann.pdf"},
		{"norwegian letters kept", 7, "Bjørn Håkon Færøy", "Tilbud-7-Bjørn Håkon Færøy.pdf"},
		{"unsafe chars replaced", 7, "Acme & Co. (AS)", "Tilbud-7-Acme _ Co_ _AS_.pdf"},
		{"whitespace only info", 9, "   \n\n", "Tilbud-9.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FileName(tc.offerNo, tc.info))
		})
	}
}
