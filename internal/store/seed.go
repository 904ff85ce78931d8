package store

// starterCatalog is the bootstrap inventory for a fresh deployment. The
// composition root inserts it on request when the catalog is empty; a real
// import replaces it wholesale later.
var starterCatalog = []ImportRow{
	{SKU: "BK-0001", Name: "สมุดโน้ต A5", Price: "45", Category: "stationery"},
	{SKU: "BK-0002", Name: "ปากกาลูกลื่น", Price: "15", Category: "stationery"},
	{SKU: "BK-0003", Name: "หนังสือนิทานเด็ก", Price: "120", Category: "books"},
	{SKU: "BK-0004", Name: "ดินสอ 2B", Price: "10", Category: "stationery"},
	{SKU: "BK-0005", Name: "พจนานุกรมไทย", Price: "250", Category: "books"},
}

// SeedStarterCatalog fills an empty catalog with the starter set and
// returns how many rows were inserted. A store that already has items is
// left untouched and reports zero.
func (s *Store) SeedStarterCatalog() (int, error) {
	empty, err := s.Catalog.IsEmpty()
	if err != nil {
		return 0, err
	}
	if !empty {
		return 0, nil
	}
	return s.Catalog.ReplaceAll(starterCatalog)
}
