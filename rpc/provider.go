package rpc

import (
	"sort"

	"github.com/grailsmarket/ens-referrals/params"
)

type Provider struct {
	Key      string
	URL      string
	Priority int
}

// prepareProviders orders the configured providers by priority, keeping the
// configured order between providers of equal priority.
func prepareProviders(providerConfigs []params.ProviderConfig) []Provider {
	providers := make([]Provider, 0, len(providerConfigs))
	for _, pc := range providerConfigs {
		providers = append(providers, Provider{
			Key:      pc.Name,
			URL:      pc.URL,
			Priority: pc.Priority,
		})
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return providers[i].Priority < providers[j].Priority
	})

	return providers
}
