package chainhash

// Stats is a snapshot of how keys are spread over the buckets.
type Stats struct {
	Count int
	// Entries is the number of nodes reachable through the chains. It always
	// equals Count.
	Entries      int
	Capacity     int
	EmptyBuckets int
	LongestChain int
	// MeanChain is the average length of the non-empty chains.
	MeanChain  float64
	LoadFactor float64
}

// Stats walks every chain and reports its distribution.
func (t *Table[V]) Stats() Stats {
	s := Stats{
		Count:      t.count,
		Capacity:   t.capacity,
		LoadFactor: t.LoadFactor(),
	}
	nonEmpty, total := 0, 0
	for _, head := range t.buckets {
		n := chainLen(head)
		if n == 0 {
			s.EmptyBuckets++
			continue
		}
		nonEmpty++
		total += n
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	s.Entries = total
	if nonEmpty > 0 {
		s.MeanChain = float64(total) / float64(nonEmpty)
	}
	return s
}
