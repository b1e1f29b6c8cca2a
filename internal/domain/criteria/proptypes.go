package criteria

// storagePropertyTypes maps UI-facing type identifiers to the storage
// vocabulary the inventory uses. Identifiers absent from the table pass
// through unchanged; whether that is deliberate forward-compatibility or a
// missing mapping is undecided upstream, so the pass-through is kept as-is.
var storagePropertyTypes = map[string]string{
	"single_family": "Single Family",
	"condo":         "Condominium",
	"townhouse":     "Townhouse",
	"multi_family":  "Multi Family",
	"apartment":     "Apartment",
	"mobile_home":   "Mobile Home",
	"land":          "Land",
	"commercial":    "Commercial",
	"farm":          "Farm",
}

// StoragePropertyType translates one UI type identifier into the inventory's
// vocabulary, passing unmapped identifiers through untouched.
func StoragePropertyType(id string) string {
	if mapped, ok := storagePropertyTypes[id]; ok {
		return mapped
	}

	return id
}
