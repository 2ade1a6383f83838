package model

// 検索結果の1件。Rankは1始まり。
type RankedID struct {
	ProductID string `json:"product_id"`
	Rank      int    `json:"rank"`
}

// SearchResult は関連度順の商品IDと、ランキングサービスの attribution token。
// token は解釈せずクライアントへそのまま渡す。
type SearchResult struct {
	Results          []RankedID `json:"results"`
	AttributionToken string     `json:"attribution_token,omitempty"`
}

func EmptySearchResult() SearchResult {
	return SearchResult{Results: []RankedID{}}
}

// IDs はランク順のIDを返す。
func (r SearchResult) IDs() []string {
	ids := make([]string, 0, len(r.Results))
	for _, it := range r.Results {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func (r SearchResult) IsEmpty() bool {
	return len(r.Results) == 0
}
