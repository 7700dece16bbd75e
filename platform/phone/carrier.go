package phone

import "strings"

// Carrier is a Myanmar mobile network operator inferred from a number prefix.
type Carrier string

const (
	CarrierMPT     Carrier = "MPT"
	CarrierOoredoo Carrier = "Ooredoo"
	CarrierTelenor Carrier = "Telenor"
	CarrierMytel   Carrier = "Mytel"
	CarrierAtom    Carrier = "Atom"
	CarrierU9      Carrier = "U9"
	CarrierUnknown Carrier = "Unknown"
)

// CarrierPrefixes pairs a carrier with the national prefixes registered for it.
type CarrierPrefixes struct {
	Carrier  Carrier
	Prefixes []string
}

// carrierTable is matched in order, carriers first and then prefixes, and the
// first hit wins. "09" under MPT shadows every later entry and "095"/"096"
// overlap between carriers; callers must not treat the result as authoritative.
var carrierTable = []CarrierPrefixes{
	{Carrier: CarrierMPT, Prefixes: []string{"09", "097", "098"}},
	{Carrier: CarrierOoredoo, Prefixes: []string{"095", "0996", "0997"}},
	{Carrier: CarrierTelenor, Prefixes: []string{"0975", "0976", "0977", "0978", "0979"}},
	{Carrier: CarrierMytel, Prefixes: []string{"0966", "0967", "0968", "0969"}},
	{Carrier: CarrierAtom, Prefixes: []string{"094", "0944", "0945"}},
	{Carrier: CarrierU9, Prefixes: []string{"095", "096"}},
}

// DetectCarrier returns the first carrier whose prefix the number starts with,
// or CarrierUnknown.
func DetectCarrier(raw string) Carrier {
	normalized := normalizeCountryCode(digitsOnly(raw))

	for _, entry := range carrierTable {
		for _, prefix := range entry.Prefixes {
			if strings.HasPrefix(normalized, prefix) {
				return entry.Carrier
			}
		}
	}

	return CarrierUnknown
}

// Carriers returns a copy of the prefix table in match order.
func Carriers() []CarrierPrefixes {
	out := make([]CarrierPrefixes, len(carrierTable))
	for i, entry := range carrierTable {
		out[i] = CarrierPrefixes{
			Carrier:  entry.Carrier,
			Prefixes: append([]string(nil), entry.Prefixes...),
		}
	}
	return out
}

// ParseCarrier resolves a carrier name case-insensitively.
// CarrierUnknown is not a valid name.
func ParseCarrier(name string) (Carrier, bool) {
	trimmed := strings.TrimSpace(name)
	for _, entry := range carrierTable {
		if strings.EqualFold(trimmed, string(entry.Carrier)) {
			return entry.Carrier, true
		}
	}
	return CarrierUnknown, false
}

func (c Carrier) String() string { return string(c) }
