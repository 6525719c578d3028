package kgrams

// countBucket maps a raw count to the modified Kneser-Ney discount
// bucket: 1, 2, or 3 (meaning "3 or more").
func countBucket(count int) int {
	switch {
	case count <= 1:
		return 1
	case count == 2:
		return 2
	default:
		return 3
	}
}

func newTables(n int) []map[string]int {
	t := make([]map[string]int, n)
	for i := range t {
		t[i] = make(map[string]int)
	}
	return t
}

// RFreqs holds one right-extension type table per context order, for
// Absolute Discount and Witten-Bell: R[co][c] is the number of distinct
// words w such that the (co+1)-gram "c w" was observed, excluding w =
// BOS.
type RFreqs struct {
	f *KgramFreqs
	R []map[string]int
}

// NewRFreqs returns an RFreqs bound to f and registers it as a
// satellite, so it is rebuilt after every f.ProcessSentences call.
func NewRFreqs(f *KgramFreqs) *RFreqs {
	s := &RFreqs{f: f}
	f.AddSatellite(s)
	s.update()
	return s
}

func (s *RFreqs) update() {
	n := s.f.N()
	s.R = newTables(n)
	for co := 0; co < n; co++ {
		for code, cnt := range s.f.Table(co + 1) {
			c, w := splitLastWord(code)
			if w == BOSInd {
				continue
			}
			_ = cnt
			s.R[co][c]++
		}
	}
}

// At returns R[order][context], 0 on miss.
func (s *RFreqs) At(order int, context string) int {
	if order < 0 || order >= len(s.R) {
		return 0
	}
	return s.R[order][context]
}

// KNFreqs holds the left, right and two-sided continuation-count tables
// needed by Kneser-Ney smoothing. L[order][y] is the number of distinct
// words preceding the order-gram y (y's own first word stripped off);
// R[order][c] is the number of distinct words following the order-gram
// c; LR[order][y] is the number of distinct (u, w) pairs such that
// "u y w" occurs, for y of length order. k-grams whose last word is BOS
// are excluded throughout.
type KNFreqs struct {
	f  *KgramFreqs
	L  []map[string]int
	R  []map[string]int
	LR []map[string]int
}

// NewKNFreqs returns a KNFreqs bound to f and registers it as a
// satellite.
func NewKNFreqs(f *KgramFreqs) *KNFreqs {
	s := &KNFreqs{f: f}
	f.AddSatellite(s)
	s.update()
	return s
}

func (s *KNFreqs) update() {
	n := s.f.N()
	s.L = newTables(n)
	s.R = newTables(n)
	s.LR = newTables(n - 1)
	for co := 1; co < n; co++ {
		for code, cnt := range s.f.Table(co + 1) {
			_ = cnt
			rest, last := splitLastWord(code)
			if last == BOSInd {
				continue
			}
			first, afterFirst := splitFirstWord(code)
			_ = first
			s.L[co][afterFirst]++
			s.R[co][rest]++
			mid, _ := splitLastWord(afterFirst)
			s.LR[co-1][mid]++
		}
	}
}

func (s *KNFreqs) lAt(order int, y string) int {
	if order < 0 || order >= len(s.L) {
		return 0
	}
	return s.L[order][y]
}

func (s *KNFreqs) rAt(order int, c string) int {
	if order < 0 || order >= len(s.R) {
		return 0
	}
	return s.R[order][c]
}

func (s *KNFreqs) lrAt(order int, y string) int {
	if order < 0 || order >= len(s.LR) {
		return 0
	}
	return s.LR[order][y]
}

// mKNFreqs holds the continuation tables needed for Modified
// Kneser-Ney: the same L/LR tables as KNFreqs (used by the recursive
// continuation levels), plus right-extension type counts stratified by
// discount bucket (1, 2, 3+) — R1/R2/R3 stratified by the raw count of
// the underlying (order+1)-gram, for the top-level formula, and
// R1low/R2low/R3low stratified by the continuation (L-) count of the
// underlying (order+1)-gram, for recursive, non-top-level queries.
type mKNFreqs struct {
	f  *KgramFreqs
	L  []map[string]int
	LR []map[string]int

	R1, R2, R3 []map[string]int

	R1low, R2low, R3low []map[string]int
}

// NewMKNFreqs returns an mKNFreqs bound to f and registers it as a
// satellite.
func NewMKNFreqs(f *KgramFreqs) *mKNFreqs {
	s := &mKNFreqs{f: f}
	f.AddSatellite(s)
	s.update()
	return s
}

func (s *mKNFreqs) update() {
	n := s.f.N()
	s.L = newTables(n)
	s.LR = newTables(n - 1)
	s.R1, s.R2, s.R3 = newTables(n), newTables(n), newTables(n)
	s.R1low, s.R2low, s.R3low = newTables(n), newTables(n), newTables(n)

	// Pass 1: raw-count buckets and continuation (L/LR) tables, built
	// together from a single scan of each order's k-gram table.
	for co := 0; co < n; co++ {
		for code, cnt := range s.f.Table(co + 1) {
			c, w := splitLastWord(code)
			if w == BOSInd {
				continue
			}
			bucketInto(s.R1[co], s.R2[co], s.R3[co], c, cnt)
			if co == 0 {
				continue
			}
			first, afterFirst := splitFirstWord(code)
			_ = first
			s.L[co][afterFirst]++
			mid, _ := splitLastWord(afterFirst)
			s.LR[co-1][mid]++
		}
	}

	// Pass 2: continuation-count buckets for recursive (non-top-level)
	// queries, built over the L table populated above. Only orders with
	// a one-higher L table available (co+1 < n) can be stratified this
	// way; order n-1 (the top level) always uses the raw-count buckets
	// from pass 1 instead.
	for co := 1; co < n-1; co++ {
		for code, cnt := range s.f.Table(co + 1) {
			c, w := splitLastWord(code)
			if w == BOSInd {
				continue
			}
			_ = cnt
			// N(.code): continuation count of the (co+1)-gram "code"
			// itself, read off the L table one order up.
			bucketInto(s.R1low[co], s.R2low[co], s.R3low[co], c, s.L[co+1][code])
		}
	}
}

func bucketInto(r1, r2, r3 map[string]int, key string, count int) {
	switch countBucket(count) {
	case 1:
		r1[key]++
	case 2:
		r2[key]++
	default:
		r3[key]++
	}
}

func (s *mKNFreqs) lAt(order int, y string) int {
	if order < 0 || order >= len(s.L) {
		return 0
	}
	return s.L[order][y]
}

func (s *mKNFreqs) lrAt(order int, y string) int {
	if order < 0 || order >= len(s.LR) {
		return 0
	}
	return s.LR[order][y]
}

func (s *mKNFreqs) rBuckets(order int, top bool, c string) (r1, r2, r3 int) {
	if order < 0 {
		return 0, 0, 0
	}
	if top {
		if order >= len(s.R1) {
			return 0, 0, 0
		}
		return s.R1[order][c], s.R2[order][c], s.R3[order][c]
	}
	if order >= len(s.R1low) {
		return 0, 0, 0
	}
	return s.R1low[order][c], s.R2low[order][c], s.R3low[order][c]
}
