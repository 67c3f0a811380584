package dyndns

// Record identifies one address record on the provider side.
// The (domain, type) pair it was found under is the cache key and is not
// stored in the record itself.
type Record struct {
	ID      string
	ZoneID  string
	Content string
}

type recordKey struct {
	recordType string
	domain     string
}

// Cache holds the zone IDs and address records discovered during one client
// session. It is owned by exactly one Client, lives on a single goroutine,
// and is discarded when the process exits.
type Cache struct {
	zones   []string
	records map[recordKey]Record
}

func NewCache() *Cache {
	return &Cache{records: make(map[recordKey]Record)}
}

// ZonesCached reports whether the zone list has been populated.
// An account with no zones at all is indistinguishable from a list that was
// never fetched, so such accounts re-list zones on every record miss.
func (c *Cache) ZonesCached() bool {
	return len(c.zones) > 0
}

// AddZone appends a zone ID. Zones are kept in the order the provider
// returned them and are not deduplicated.
func (c *Cache) AddZone(id string) {
	c.zones = append(c.zones, id)
}

// Zones returns a copy of the cached zone IDs in insertion order.
func (c *Cache) Zones() []string {
	return append([]string(nil), c.zones...)
}

// Record looks up the record cached for the (domain, type) pair.
// Both fields are matched case-sensitively.
func (c *Cache) Record(domain, recordType string) (Record, bool) {
	r, ok := c.records[recordKey{recordType, domain}]
	return r, ok
}

// SetRecord inserts or fully overwrites the record for the (domain, type)
// pair. Last write wins.
func (c *Cache) SetRecord(domain, recordType, id, zoneID, content string) {
	c.records[recordKey{recordType, domain}] = Record{
		ID:      id,
		ZoneID:  zoneID,
		Content: content,
	}
}
