package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.CaseFolder = (*CaseFolder)(nil)

// CaseFolder is a mock implementation of wordfreq.CaseFolder.
type CaseFolder struct {
	LowerFn func(s string) string
}

func (f *CaseFolder) Lower(s string) string {
	return f.LowerFn(s)
}
