package skinvault

// This file implements the inventory payload and the asset/description join
// that turns a raw provider response into per-item counts.

// Asset is one owned unit, sourced verbatim from the inventory provider.
type Asset struct {
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	AssetID    string `json:"assetid"`
}

// Description is the metadata for a distinct item kind. Many assets may
// reference one description via the (classid, instanceid) pair.
type Description struct {
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	MarketHashName string `json:"market_hash_name"`
	Marketable     int    `json:"marketable"`
}

// Inventory is the raw inventory provider payload. The provider is untrusted:
// fields can be missing and descriptions are not necessarily unique per key.
type Inventory struct {
	Assets       []Asset       `json:"assets"`
	Descriptions []Description `json:"descriptions"`
}

// ItemCount maps a market hash name to the owned quantity (always >= 1).
// It is built fresh per run and never persisted.
type ItemCount map[string]int

// descKey identifies an item variant. A missing instance id defaults to "0".
type descKey struct {
	classID    string
	instanceID string
}

func newDescKey(classID, instanceID string) descKey {
	if instanceID == "" {
		instanceID = "0"
	}
	return descKey{classID, instanceID}
}

// ItemCounts joins assets to their descriptions and counts owned units per
// market hash name.
//
// The description index is keyed by (classid, instanceid) with last-write-wins
// on duplicate keys. An asset whose exact key has no description falls back to
// the first description with the same classid, ignoring the instance id; when
// an item has several instance variants this can attribute the asset to the
// wrong variant. Assets whose description has no market hash name are not
// tradeable and are dropped from the count.
func (inv *Inventory) ItemCounts() ItemCount {
	index := make(map[descKey]Description, len(inv.Descriptions))
	for _, d := range inv.Descriptions {
		index[newDescKey(d.ClassID, d.InstanceID)] = d
	}

	counts := make(ItemCount)
	for _, a := range inv.Assets {
		d, ok := index[newDescKey(a.ClassID, a.InstanceID)]
		if !ok {
			d, ok = inv.firstByClass(a.ClassID)
		}
		if !ok || d.MarketHashName == "" {
			continue
		}
		counts[d.MarketHashName]++
	}
	return counts
}

// firstByClass returns the first description matching the class id.
func (inv *Inventory) firstByClass(classID string) (Description, bool) {
	for _, d := range inv.Descriptions {
		if d.ClassID == classID {
			return d, true
		}
	}
	return Description{}, false
}
