package retrieval

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultKeywords maps canonical topic names to keyword stems.
var DefaultKeywords = map[string][]string{
	"quadratic equations": {"quadratic", "equation", "parabola", "x²", "square", "roots", "factoring"},
	"polynomials":         {"polynomial", "degree", "coefficient", "term", "variable"},
	"probability":         {"probability", "chance", "likelihood", "odds", "random", "sample", "event"},
	"trigonometry":        {"sin", "cos", "tan", "angle", "triangle", "trigonometry"},
	"statistics":          {"mean", "median", "mode", "data", "statistics", "average"},
	"geometry":            {"circle", "triangle", "rectangle", "area", "perimeter", "angle"},
	"algebra":             {"variable", "expression", "solve", "equation", "linear"},
}

// KeywordTable detects questions that clearly belong to another topic.
// A stem matches anywhere in the lower-cased query.
type KeywordTable struct {
	topics []string
	stems  map[string][]string
}

func NewKeywordTable(keywords map[string][]string) (*KeywordTable, error) {
	t := &KeywordTable{stems: make(map[string][]string, len(keywords))}
	for topic, words := range keywords {
		key := normalizeTopic(topic)
		if key == "" {
			return nil, fmt.Errorf("empty topic name in keyword table")
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			t.stems[key] = append(t.stems[key], w)
		}
		t.topics = append(t.topics, key)
	}
	sort.Strings(t.topics)
	return t, nil
}

// DefaultKeywordTable panics only if DefaultKeywords is malformed.
func DefaultKeywordTable() *KeywordTable {
	t, err := NewKeywordTable(DefaultKeywords)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadKeywordTable reads a YAML mapping of topic -> list of stems.
func LoadKeywordTable(path string) (*KeywordTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword table: %w", err)
	}
	var keywords map[string][]string
	if err := yaml.Unmarshal(raw, &keywords); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword table %s is empty", path)
	}
	return NewKeywordTable(keywords)
}

// ForeignTopic reports the first other topic whose stem appears in the query.
func (t *KeywordTable) ForeignTopic(query, sessionTopic string) (string, bool) {
	q := strings.ToLower(query)
	session := normalizeTopic(sessionTopic)

	for _, topic := range t.topics {
		if topic == session {
			continue
		}
		for _, stem := range t.stems[topic] {
			if strings.Contains(q, stem) {
				return topic, true
			}
		}
	}
	return "", false
}

func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
