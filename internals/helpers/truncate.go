package helper

// TruncateText memotong teks untuk tampilan tabel; nilai tersimpan tidak pernah
// ikut dipotong.
func TruncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
