package constants

// Redis key formats
const (
	KeyUserLastSeen = "user:lastseen:%s"   // Format: user:lastseen:{user_id}
	KeyTripPosition = "trip:position:%s"   // Format: trip:position:{trip_id}
	KeyTripGeo      = "trips:positions"    // GeoHash set of latest trip positions
)

// Redis hash fields for trip position entries
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldHeading   = "heading"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
