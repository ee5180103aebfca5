package elasticsearch

// DefaultIndexName is the default Elasticsearch index for product documents.
const DefaultIndexName = "catalog_products"

// buildIndexMapping returns the JSON mapping for the products index.
// Name and description are analyzed text; filterable fields are keyword
// or numeric so term and range filters apply exactly.
func buildIndexMapping() string {
	return `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "id":             { "type": "keyword" },
      "name":           { "type": "text", "fields": { "keyword": { "type": "keyword", "ignore_above": 256 } } },
      "description":    { "type": "text" },
      "category":       { "type": "keyword" },
      "price":          { "type": "double" },
      "rating":         { "type": "float" },
      "review_count":   { "type": "integer" },
      "popularity":     { "type": "integer" },
      "is_best_seller": { "type": "boolean" },
      "in_stock":       { "type": "boolean" }
    }
  }
}`
}
