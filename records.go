package dyndns

import (
	"context"
	"encoding/json"
	"fmt"
)

type cloudflareZone struct {
	ID string `json:"id"`
}

type cloudflareRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Zones returns the account's zone IDs, listing them from the API the first
// time and answering from the cache afterwards.
func (c *Client) Zones(ctx context.Context) ([]string, error) {
	if !c.cache.ZonesCached() {
		zones, err := getJSON[[]cloudflareZone](ctx, c, "zones")
		if err != nil {
			return nil, fmt.Errorf("listing zones: %w", err)
		}
		for _, z := range zones {
			c.cache.AddZone(z.ID)
		}
		c.logger.Printf("cached %d zones", len(zones))
	}
	return c.cache.Zones(), nil
}

// Record returns the address record published for the (domain, type) pair.
//
// On a cache miss it walks every zone and caches every A/AAAA record found,
// not just the requested pair: the list API is per-zone rather than per-name,
// so one full walk amortizes across all later lookups in the same run.
// If the pair is still absent afterwards the result is a NotFoundError.
func (c *Client) Record(ctx context.Context, domain, recordType string) (Record, error) {
	if _, ok := c.cache.Record(domain, recordType); !ok {
		zones, err := c.Zones(ctx)
		if err != nil {
			return Record{}, err
		}
		for _, zoneID := range zones {
			records, err := getJSON[[]cloudflareRecord](ctx, c, "zones/"+zoneID+"/dns_records?type=A&type=AAAA")
			if err != nil {
				return Record{}, fmt.Errorf("listing records for zone %s: %w", zoneID, err)
			}
			for _, r := range records {
				c.cache.SetRecord(r.Name, r.Type, r.ID, zoneID, r.Content)
			}
			c.logger.Printf("cached %d address records for zone %s", len(records), zoneID)
		}
	}

	record, ok := c.cache.Record(domain, recordType)
	if !ok {
		return Record{}, &NotFoundError{Domain: domain, Type: recordType}
	}
	return record, nil
}

// UpdateRecord sets the content of the record published for the (domain,
// type) pair and verifies the write took effect.
//
// The provider must echo exactly the requested content back; anything else
// fails with UpdateMismatchError and leaves the cache untouched. Only a
// verified write overwrites the cached content (ID and zone are unchanged).
func (c *Client) UpdateRecord(ctx context.Context, domain, recordType, content string) (Record, error) {
	record, err := c.Record(ctx, domain, recordType)
	if err != nil {
		return Record{}, fmt.Errorf("resolving %s record for %s: %w", recordType, domain, err)
	}

	body, err := json.Marshal(struct {
		Content string `json:"content"`
	}{Content: content})
	if err != nil {
		return Record{}, fmt.Errorf("encoding record update for %s: %w", domain, err)
	}

	updated, err := putJSON[cloudflareRecord](ctx, c, "zones/"+record.ZoneID+"/dns_records/"+record.ID, body)
	if err != nil {
		return Record{}, fmt.Errorf("updating %s record for %s: %w", recordType, domain, err)
	}
	if updated.Content != content {
		return Record{}, &UpdateMismatchError{Domain: domain, Type: recordType, Want: content, Got: updated.Content}
	}

	c.cache.SetRecord(domain, recordType, record.ID, record.ZoneID, content)
	record.Content = content
	return record, nil
}
