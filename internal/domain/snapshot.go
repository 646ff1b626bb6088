package domain

// ActivitySnapshot aggregates one account's artifacts and papers for a
// single year. Derived on every live generation, never mutated afterwards.
type ActivitySnapshot struct {
	Models   []*Artifact `json:"models"`
	Datasets []*Artifact `json:"datasets"`
	Spaces   []*Artifact `json:"spaces"`
	Papers   []*Paper    `json:"papers"`

	TotalDownloads int      `json:"total_downloads"`
	TotalLikes     int      `json:"total_likes"`
	TotalRepos     int      `json:"total_repos"`
	TopTags        []string `json:"top_tags"`
	BusiestMonth   string   `json:"busiest_month,omitempty"`
}
