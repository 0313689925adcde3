package record

// Country is a first-level administrative code of a sample (adm1).
type Country string

const (
	England         Country = "UK-ENG"
	Wales           Country = "UK-WLS"
	NorthernIreland Country = "UK-NIR"
	Scotland        Country = "UK-SCT"
)

// Countries lists all supported country codes.
var Countries = []Country{England, Wales, NorthernIreland, Scotland}

// ParseCountry returns a Country for a supported code.
func ParseCountry(s string) (Country, bool) {
	for _, v := range Countries {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (c Country) String() string {
	return string(c)
}
