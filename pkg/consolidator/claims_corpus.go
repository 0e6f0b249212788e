package consolidator

import (
	_ "embed"
	"encoding/json"
)

// claimsCorpusJSON is the embedded default-claims corpus: citation and
// description pairs for the two default causes of action (federal and
// New York FCRA) a case gets when attorney notes supply no explicit
// LEGAL_CLAIMS block. It is a checked-in substitution for a legal-rules
// resource not present in the retrieved reference material; it carries
// only the same two jurisdictions the default-causes template needs.
//
//go:embed claims_corpus.json
var claimsCorpusJSON []byte

type corpusClaim struct {
	Jurisdiction string `json:"jurisdiction"`
	Citation     string `json:"citation"`
	Description  string `json:"description"`
}

var claimsCorpus = loadClaimsCorpus()

func loadClaimsCorpus() []corpusClaim {
	var claims []corpusClaim
	if err := json.Unmarshal(claimsCorpusJSON, &claims); err != nil {
		// The corpus is a checked-in file compiled into the binary; a
		// parse failure here means the file itself is malformed, not a
		// runtime condition the caller can recover from.
		panic("consolidator: malformed claims_corpus.json: " + err.Error())
	}
	return claims
}

func claimsForJurisdiction(jurisdiction string) []corpusClaim {
	var out []corpusClaim
	for _, c := range claimsCorpus {
		if c.Jurisdiction == jurisdiction {
			out = append(out, c)
		}
	}
	return out
}
