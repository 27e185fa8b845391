// Package dataset embeds the static party, ministry, and policy master
// data and parses it once at startup.
package dataset

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

//go:embed parties.yaml
var partiesYAML []byte

//go:embed ministries.yaml
var ministriesYAML []byte

//go:embed policies.yaml
var policiesYAML []byte

// Data bundles the loaded datasets.
type Data struct {
	Parties    entity.PartyList
	Ministries entity.MinistryList
	Policies   entity.PolicyList
}

var (
	loadOnce sync.Once
	loaded   *Data
	loadErr  error
)

// Load parses the embedded datasets and validates their cross-references.
// The result is cached; every call returns the same Data.
func Load() (*Data, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

// MustLoad is Load for program startup, where malformed embedded data is
// unrecoverable.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

func parse() (*Data, error) {
	var parties struct {
		Parties entity.PartyList `yaml:"parties"`
	}
	if err := yaml.Unmarshal(partiesYAML, &parties); err != nil {
		return nil, fmt.Errorf("parse parties.yaml: %w", err)
	}

	var ministries struct {
		Ministries entity.MinistryList `yaml:"ministries"`
	}
	if err := yaml.Unmarshal(ministriesYAML, &ministries); err != nil {
		return nil, fmt.Errorf("parse ministries.yaml: %w", err)
	}

	var policies struct {
		Policies entity.PolicyList `yaml:"policies"`
	}
	if err := yaml.Unmarshal(policiesYAML, &policies); err != nil {
		return nil, fmt.Errorf("parse policies.yaml: %w", err)
	}

	d := &Data{
		Parties:    parties.Parties,
		Ministries: ministries.Ministries,
		Policies:   policies.Policies,
	}
	if err := validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func validate(d *Data) error {
	seats := 0
	for _, p := range d.Parties {
		seats += p.Seats
	}
	if seats != entity.TotalSeats {
		return fmt.Errorf("party seats sum to %d, want %d", seats, entity.TotalSeats)
	}
	if d.Ministries.FindByID(entity.MinistryPM) == nil {
		return fmt.Errorf("ministry dataset is missing the %s slot", entity.MinistryPM)
	}
	for _, p := range d.Policies {
		if d.Parties.FindByID(p.Party) == nil {
			return fmt.Errorf("policy %s references unknown party %s", p.ID, p.Party)
		}
	}
	return nil
}
