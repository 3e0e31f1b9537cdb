package model

// CategoryMap maps category labels to amounts, preserving the order in
// which labels first appear in the summary sheet. Amounts are kept as the
// spreadsheet's original strings.
type CategoryMap struct {
	amounts map[string]string
	labels  []string
}

// NewCategoryMap creates an empty CategoryMap.
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{amounts: make(map[string]string)}
}

// Set records a label→amount pair. The first occurrence of a label fixes
// its position; later Sets update the amount in place.
func (m *CategoryMap) Set(label, amount string) {
	if _, ok := m.amounts[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.amounts[label] = amount
}

// Amount returns the amount for a label and whether the label exists.
func (m *CategoryMap) Amount(label string) (string, bool) {
	amount, ok := m.amounts[label]
	return amount, ok
}

// Has reports whether the label is a known category.
func (m *CategoryMap) Has(label string) bool {
	_, ok := m.amounts[label]
	return ok
}

// Labels returns the category labels in first-occurrence order.
func (m *CategoryMap) Labels() []string {
	labels := make([]string, len(m.labels))
	copy(labels, m.labels)
	return labels
}

// Len returns the number of categories.
func (m *CategoryMap) Len() int {
	return len(m.labels)
}
