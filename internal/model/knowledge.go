package model

// KnowledgeEntry is a manually curated fact string about the user
// (preferences, history, constraints). Entries carry no identifier or
// timestamp; insertion order is preserved but has no semantic weight.
type KnowledgeEntry struct {
	Text string `json:"text"`
}
