package models

// Reference data kinds served by /api/reference/{kind}
var ReferenceKinds = []string{
	"kulam",
	"kula_deivam",
	"kaani",
	"degree",
	"department",
	"institution",
	"company",
	"position",
}

// Cascades: child kind -> parent kind. Only these two pairs filter
var CascadeParents = map[string]string{
	"kaani":      "kula_deivam",
	"department": "degree",
}

// ReferenceItem is one entry in a reference list. ParentID links cascade
// children (kaani -> kula_deivam, department -> degree)
type ReferenceItem struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// District is one district served by /api/districts
type District struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// PostOffice is one post office resolved from a PIN code
type PostOffice struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	PinCode  string `json:"pin_code"`
	District string `json:"district"`
	State    string `json:"state"`
}
