package entity

// CityRegions is one city with its registered regions, in registration order.
type CityRegions struct {
	City    string   `bson:"_id" json:"city" yaml:"city"`
	Regions []string `bson:"regions" json:"regions" yaml:"regions"`
}

// CityData maps city names to their regions while keeping insertion order.
type CityData []CityRegions

// Cities lists city names in order.
func (d CityData) Cities() []string {
	out := make([]string, 0, len(d))
	for _, c := range d {
		out = append(out, c.City)
	}
	return out
}

func (d CityData) index(city string) int {
	for i, c := range d {
		if c.City == city {
			return i
		}
	}
	return -1
}

// HasCity reports whether city is registered.
func (d CityData) HasCity(city string) bool {
	return d.index(city) >= 0
}

// Regions returns the regions of city, or nil when the city is unknown.
func (d CityData) Regions(city string) []string {
	if i := d.index(city); i >= 0 {
		return append([]string(nil), d[i].Regions...)
	}
	return nil
}

// HasRegion reports whether region is registered under city.
func (d CityData) HasRegion(city, region string) bool {
	i := d.index(city)
	if i < 0 {
		return false
	}
	for _, r := range d[i].Regions {
		if r == region {
			return true
		}
	}
	return false
}

// AddCity registers city. It returns false when the city already exists.
func (d *CityData) AddCity(city string) bool {
	if d.HasCity(city) {
		return false
	}
	*d = append(*d, CityRegions{City: city, Regions: []string{}})
	return true
}

// AddRegion registers region under city, creating the city when needed.
// It returns false when the region was already registered there.
func (d *CityData) AddRegion(city, region string) bool {
	d.AddCity(city)
	if d.HasRegion(city, region) {
		return false
	}
	i := d.index(city)
	(*d)[i].Regions = append((*d)[i].Regions, region)
	return true
}

// ResolveRegion keeps region only when it belongs to city. Picking a new city
// therefore clears a region chosen for the previous one.
func (d CityData) ResolveRegion(city, region string) string {
	if region == "" || !d.HasRegion(city, region) {
		return ""
	}
	return region
}

// Clone returns a deep copy.
func (d CityData) Clone() CityData {
	out := make(CityData, len(d))
	for i, c := range d {
		out[i] = CityRegions{City: c.City, Regions: append([]string{}, c.Regions...)}
	}
	return out
}
