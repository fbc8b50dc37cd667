package domain

import (
	"math"
	"sort"
)

// Distribution summarizes a population of saved archetype codes.
type Distribution struct {
	Total   int           `json:"total"`
	Invalid int           `json:"invalid"`
	Codes   []CodeShare   `json:"codes"`
	Letters []LetterShare `json:"letters"`
}

// CodeShare is the count and share of one archetype code.
type CodeShare struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// LetterShare is the left/right split of one axis across the population.
type LetterShare struct {
	AxisName     string  `json:"axis_name"`
	LeftLetter   string  `json:"left_letter"`
	RightLetter  string  `json:"right_letter"`
	LeftCount    int     `json:"left_count"`
	RightCount   int     `json:"right_count"`
	LeftPercent  float64 `json:"left_percent"`
	RightPercent float64 `json:"right_percent"`
}

// ComputeDistribution counts codes and per-axis letters. Codes that are not
// five valid letters count toward Invalid only.
func ComputeDistribution(codes []string) Distribution {
	d := Distribution{Total: len(codes)}
	counts := make(map[string]int)
	var left, right [AxisCount]int

	for _, code := range codes {
		if TraitsFor(code) == nil {
			d.Invalid++
			continue
		}
		counts[code]++
		for i, a := range Axes {
			if Letter(code[i]) == a.Left().Letter {
				left[i]++
			} else {
				right[i]++
			}
		}
	}

	valid := d.Total - d.Invalid
	for code, n := range counts {
		a, _ := LookupArchetype(code)
		d.Codes = append(d.Codes, CodeShare{Code: code, Name: a.Name, Count: n, Percent: share(n, valid)})
	}
	sort.Slice(d.Codes, func(i, j int) bool {
		if d.Codes[i].Count != d.Codes[j].Count {
			return d.Codes[i].Count > d.Codes[j].Count
		}
		return d.Codes[i].Code < d.Codes[j].Code
	})

	for i, a := range Axes {
		d.Letters = append(d.Letters, LetterShare{
			AxisName:     a.Name(),
			LeftLetter:   a.Left().Letter.String(),
			RightLetter:  a.Right().Letter.String(),
			LeftCount:    left[i],
			RightCount:   right[i],
			LeftPercent:  share(left[i], valid),
			RightPercent: share(right[i], valid),
		})
	}
	return d
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*10000) / 100
}
