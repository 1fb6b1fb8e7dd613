package supabase

import (
	"fmt"

	sc "github.com/supabase-community/storage-go"
)

func NewSupabaseClient(projectID, apiKey string) *sc.Client {
	apiURL := fmt.Sprintf("https://%s.supabase.co/storage/v1", projectID)
	return sc.NewClient(apiURL, apiKey, nil)
}
