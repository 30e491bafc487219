package technology

import "fmt"

// Store is the immutable in-memory catalog. It is safe for concurrent reads.
type Store struct {
	records        []Record
	byID           map[string]int
	installations  []string
	byInstallation map[string][]int
}

// NewStore copies records into a new store. Record ids must be unique.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records:        make([]Record, 0, len(records)),
		byID:           make(map[string]int, len(records)),
		byInstallation: make(map[string][]int),
	}
	for _, rec := range records {
		if _, dup := s.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		idx := len(s.records)
		s.records = append(s.records, cloneRecord(rec))
		s.byID[rec.ID] = idx
		if _, seen := s.byInstallation[rec.Installation]; !seen {
			s.installations = append(s.installations, rec.Installation)
		}
		s.byInstallation[rec.Installation] = append(s.byInstallation[rec.Installation], idx)
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns a copy of every record in load order.
func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, cloneRecord(rec))
	}
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return cloneRecord(s.records[idx]), nil
}

// Has reports whether a record id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByInstallation returns the records of one installation in load order.
func (s *Store) ByInstallation(name string) []Record {
	idxs := s.byInstallation[name]
	out := make([]Record, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, cloneRecord(s.records[idx]))
	}
	return out
}

// Installations returns installation names in encounter order.
func (s *Store) Installations() []string {
	return append([]string(nil), s.installations...)
}
