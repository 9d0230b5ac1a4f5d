package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
)

// Sign builds the canonical signature of a vendor request parameter set.
// Entries with empty values are excluded, remaining entries are sorted by
// key and joined as k=v pairs with "&", then "&SecretKey=<secret>" is
// appended. The result is the base64 of the HMAC-SHA256 digest of that
// string, keyed with the secret.
func Sign(params map[string]string, secret string) string {
	pairs := make([]string, 0, len(params))
	for _, key := range getSortedMapKeys(params) {
		if params[key] == "" {
			continue
		}

		pairs = append(pairs, key+"="+params[key])
	}

	signString := strings.Join(pairs, "&") + "&SecretKey=" + secret

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func getSortedMapKeys(mapToSort map[string]string) []string {
	keys := make([]string, len(mapToSort))

	i := 0
	for key := range mapToSort {
		keys[i] = key
		i++
	}

	sort.Strings(keys)
	return keys
}
