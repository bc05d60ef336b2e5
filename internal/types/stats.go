//nolint:revive // types is a standard Go package name pattern
package types

// Stats are the aggregate counters over published records. Preprints never
// contribute.
type Stats struct {
	Total    int `json:"total"`
	CCFTotal int `json:"ccf_total"`
	CCFA     int `json:"ccf_a"`
	CCFB     int `json:"ccf_b"`
	JCRQ1    int `json:"jcr_q1"`
	JCRQ2    int `json:"jcr_q2"`
}
