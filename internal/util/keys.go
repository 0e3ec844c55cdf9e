package util

import "strconv"

// EntryKey returns the provider key for id in namespace ns:
// "phrase:<ns>:<id as 8 lowercase hex digits>".
func EntryKey(ns string, id uint32) string {
	const hexDigits = 8
	h := strconv.FormatUint(uint64(id), 16)
	b := make([]byte, 0, len("phrase:")+len(ns)+1+hexDigits)
	b = append(b, "phrase:"...)
	b = append(b, ns...)
	b = append(b, ':')
	for i := len(h); i < hexDigits; i++ {
		b = append(b, '0')
	}
	b = append(b, h...)
	return string(b)
}
