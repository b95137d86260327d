package renewal

import (
	"strings"

	ens "github.com/wealdtech/go-ens/v3"
)

const ethSuffix = ".eth"

// NormaliseLabel turns user input such as "Alice.eth" into the second-level
// label the registrar controller expects.
func NormaliseLabel(name string) (string, error) {
	label := strings.TrimSuffix(strings.TrimSpace(name), ethSuffix)
	normalised, err := ens.NormaliseDomain(label)
	if err != nil {
		return "", ErrInvalidLabel.WithDetails(name).Wrap(err)
	}
	normalised = strings.TrimSuffix(normalised, ethSuffix)
	if normalised == "" || strings.Contains(normalised, ".") {
		return "", ErrInvalidLabel.WithDetails(name)
	}
	return normalised, nil
}

// NormaliseLabels normalises every name, failing on the first invalid one.
func NormaliseLabels(names []string) ([]string, error) {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		label, err := NormaliseLabel(name)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}
