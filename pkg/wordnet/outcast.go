package wordnet

import "slices"

// Outcast identifies the least related word in a group: the one whose summed
// semantic distance to all the others is maximal.
type Outcast struct {
	wn *WordNet
}

// NewOutcast creates an outcast finder over wn.
func NewOutcast(wn *WordNet) *Outcast {
	return &Outcast{wn: wn}
}

// Find returns the outcast among nouns, or the empty string when there is no
// unique answer: fewer than three distinct nouns, or the maximal distance
// sum shared by two or more candidates. Duplicate nouns are ignored, as with
// a set-valued input. Unknown words and disconnected pairs surface as errors
// from the underlying distance query.
func (o *Outcast) Find(nouns []string) (string, error) {
	distinct := make([]string, 0, len(nouns))
	for _, n := range nouns {
		if !slices.Contains(distinct, n) {
			distinct = append(distinct, n)
		}
	}
	if len(distinct) <= 2 {
		return "", nil
	}

	sums := make([]int, len(distinct))
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			d, err := o.wn.Distance(distinct[i], distinct[j])
			if err != nil {
				return "", err
			}
			sums[i] += d
			sums[j] += d
		}
	}

	maxAt := 0
	repeated := false
	for i := 1; i < len(sums); i++ {
		switch {
		case sums[i] > sums[maxAt]:
			maxAt = i
			repeated = false
		case sums[i] == sums[maxAt]:
			repeated = true
		}
	}
	if repeated {
		return "", nil
	}
	return distinct[maxAt], nil
}
