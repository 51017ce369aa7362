package elastic

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const CourseIndex = "courses"

func NewElasticClient(username, password string, hosts []string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: hosts,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: failed to create client: %w", err)
	}
	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elastic: cannot connect to cluster: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elastic: cluster returned error: %s", res.String())
	}
	return client, nil
}
