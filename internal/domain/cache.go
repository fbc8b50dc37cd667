package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// CacheKey identifies a classification by its scope (bank version plus
// anything else that changes which questions count) and the answers. Any
// change to either yields a new key.
func CacheKey(scope string, answers Answers) string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := sha256.New()
	fmt.Fprintf(h, "bank=%s\n", scope)
	for _, id := range ids {
		fmt.Fprintf(h, "%q=%d\n", id, answers[id])
	}
	return hex.EncodeToString(h.Sum(nil))
}
