package knowledge

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Link is a labeled URL surfaced alongside an answer.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Entry is a single FAQ record: one canonical question, any number of
// alternate phrasings, and the templated answer content.
type Entry struct {
	Id          string
	Question    string
	Aliases     []string
	Answer      string
	Instruction string
	Clarify     string
	Links       []Link
}

// Store holds all FAQ entries plus the fallback content served when no entry
// is a confident match. It is built once and never mutated afterwards, so it
// is safe to share across any number of concurrent readers.
type Store struct {
	entries             []Entry
	fallbackAnswer      string
	fallbackInstruction string
	fallbackLinks       []Link
}

const defaultFallbackAnswer = "I could not find any relevant entries in the knowledge base for that question. " +
	"Please refine the query or update the FAQ content."

// NewStore builds a Store directly from entries and fallback content. An
// empty fallbackAnswer keeps the built-in default.
func NewStore(entries []Entry, fallbackAnswer, fallbackInstruction string, fallbackLinks []Link) *Store {
	if fallbackAnswer == "" {
		fallbackAnswer = defaultFallbackAnswer
	}
	return &Store{
		entries:             entries,
		fallbackAnswer:      fallbackAnswer,
		fallbackInstruction: fallbackInstruction,
		fallbackLinks:       fallbackLinks,
	}
}

// Entries returns the entries in load order.
func (s *Store) Entries() []Entry {
	return s.entries
}

func (s *Store) FallbackAnswer() string      { return s.fallbackAnswer }
func (s *Store) FallbackInstruction() string { return s.fallbackInstruction }
func (s *Store) FallbackLinks() []Link       { return s.fallbackLinks }

// rawDocument mirrors the JSON layout of the knowledge file. Every field is
// loosely typed on purpose: a single bad entry must not poison the load.
type rawDocument struct {
	Faqs     json.RawMessage `json:"faqs"`
	Fallback json.RawMessage `json:"fallback"`
}

type rawEntry struct {
	Id          any   `json:"id"`
	Question    any   `json:"question"`
	Aliases     []any `json:"aliases"`
	Answer      any   `json:"answer"`
	Instruction any   `json:"instruction"`
	Clarify     any   `json:"clarify"`
	Links       []any `json:"links"`
}

type rawFallback struct {
	Ask         any `json:"ask"`
	Instruction any `json:"instruction"`
	Contact     any `json:"contact"`
}

// LoadFromFile reads the knowledge base JSON document and builds a Store.
// Returns *LoadError when the file is missing, is not valid JSON, or its
// "faqs" field is not an array. Malformed individual entries are skipped with
// a warning; a zero-entry load still succeeds (the store degrades to the
// fallback for every query).
func LoadFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return loadFromBytes(path, data)
}

func loadFromBytes(path string, data []byte) (*Store, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	var rawEntries []json.RawMessage
	if len(doc.Faqs) > 0 {
		if err := json.Unmarshal(doc.Faqs, &rawEntries); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("'faqs' must be an array: %w", err)}
		}
	}

	entries := make([]Entry, 0, len(rawEntries))
	for idx, raw := range rawEntries {
		var item rawEntry
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Printf("[WARN] Skipping FAQ entry at index %d: expected object: %v", idx, err)
			continue
		}
		entries = append(entries, buildEntry(idx, item))
	}

	store := &Store{
		entries:        entries,
		fallbackAnswer: defaultFallbackAnswer,
	}
	store.applyFallback(doc.Fallback)

	if len(entries) == 0 {
		log.Printf("[WARN] Knowledge base loaded with zero FAQ entries from %s", path)
	}
	return store, nil
}

func buildEntry(idx int, item rawEntry) Entry {
	id := asString(item.Id)
	if id == "" {
		id = fmt.Sprintf("entry_%03d", idx)
	}

	aliases := make([]string, 0, len(item.Aliases))
	for _, alias := range item.Aliases {
		if s, ok := alias.(string); ok && strings.TrimSpace(s) != "" {
			aliases = append(aliases, strings.TrimSpace(s))
		}
	}

	links := make([]Link, 0, len(item.Links))
	for _, l := range item.Links {
		obj, ok := l.(map[string]any)
		if !ok {
			continue
		}
		label := asString(obj["label"])
		url := asString(obj["url"])
		if label != "" && url != "" {
			links = append(links, Link{Label: label, URL: url})
		}
	}

	return Entry{
		Id:          id,
		Question:    asString(item.Question),
		Aliases:     aliases,
		Answer:      asString(item.Answer),
		Instruction: asString(item.Instruction),
		Clarify:     asString(item.Clarify),
		Links:       links,
	}
}

// applyFallback keeps the built-in default when the fallback block is absent
// or malformed.
func (s *Store) applyFallback(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var fb rawFallback
	if err := json.Unmarshal(raw, &fb); err != nil {
		log.Printf("[WARN] Ignoring malformed fallback block: %v", err)
		return
	}
	if ask := asString(fb.Ask); ask != "" {
		s.fallbackAnswer = ask
	}
	s.fallbackInstruction = asString(fb.Instruction)
	if contact, ok := fb.Contact.(map[string]any); ok {
		label := asString(contact["label"])
		url := asString(contact["url"])
		if label != "" && url != "" {
			s.fallbackLinks = append(s.fallbackLinks, Link{Label: label, URL: url})
		}
	}
}

// asString coerces a loosely-typed JSON value to a trimmed string. Non-string
// values are dropped rather than stringified.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
