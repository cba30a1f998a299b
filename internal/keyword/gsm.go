package keyword

// GSM 03.38 default alphabet plus the extension table characters reachable
// through the escape code.
const gsmChars = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà" +
	"\f^{}\\[~]|€"

var gsmSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(gsmChars))
	for _, r := range gsmChars {
		set[r] = struct{}{}
	}
	return set
}()

// IsGSM reports whether every character of s can be encoded in a plain SMS.
func IsGSM(s string) bool {
	for _, r := range s {
		if _, ok := gsmSet[r]; !ok {
			return false
		}
	}
	return true
}
