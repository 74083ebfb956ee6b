package properties

import (
	"golang.org/x/exp/slices"
)

// Attribute keys that the summary knows how to present
const (
	AttrDescription = "desc"
	AttrType        = "type"
	AttrDefault     = "dflt"
	AttrExtra       = "xtra"
)

// RequiredAttributes are printed for every property
var RequiredAttributes = []string{AttrDescription, AttrType, AttrDefault}

// A PropertyRecord holds every attribute set for one property, keyed by the
// attribute name (eg: "dflt" for "timeout.dflt=30")
type PropertyRecord struct {
	Name       string
	Attributes map[string]string
}

func (r *PropertyRecord) Get(attribute string) (string, bool) {
	value, ok := r.Attributes[attribute]
	return value, ok
}

func (r *PropertyRecord) Description() string {
	return r.Attributes[AttrDescription]
}

func (r *PropertyRecord) Type() string {
	return r.Attributes[AttrType]
}

func (r *PropertyRecord) Default() string {
	return r.Attributes[AttrDefault]
}

// Extra returns the optional extended notes for the property
func (r *PropertyRecord) Extra() (string, bool) {
	return r.Get(AttrExtra)
}

// Missing lists the required attributes the record never had set
func (r *PropertyRecord) Missing() []string {
	var missing []string
	for _, attribute := range RequiredAttributes {
		if _, ok := r.Attributes[attribute]; !ok {
			missing = append(missing, attribute)
		}
	}
	return missing
}

// ClassProperties maps property names to their records, remembering the
// order in which each property was first seen
type ClassProperties struct {
	order   []string
	records map[string]*PropertyRecord
}

func NewClassProperties() *ClassProperties {
	return &ClassProperties{records: make(map[string]*PropertyRecord)}
}

// Set stores a single attribute, overwriting any earlier value for the same
// property and attribute
func (cp *ClassProperties) Set(property, attribute, value string) {
	record, ok := cp.records[property]
	if !ok {
		record = &PropertyRecord{Name: property, Attributes: make(map[string]string)}
		cp.records[property] = record
		cp.order = append(cp.order, property)
	}
	record.Attributes[attribute] = value
}

func (cp *ClassProperties) Lookup(property string) (*PropertyRecord, bool) {
	record, ok := cp.records[property]
	return record, ok
}

func (cp *ClassProperties) Len() int {
	return len(cp.order)
}

// Names returns the property names in first-seen order
func (cp *ClassProperties) Names() []string {
	return slices.Clone(cp.order)
}

// Records returns the records in first-seen order
func (cp *ClassProperties) Records() []*PropertyRecord {
	records := make([]*PropertyRecord, 0, len(cp.order))
	for _, name := range cp.order {
		records = append(records, cp.records[name])
	}
	return records
}
