package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"zonedelivery/internal/core/domain/model/tariff"
)

// tariffPolicyFile is the YAML layout of a tariff policy. Omitted fields keep
// their default values.
//
//	tiers:
//	  - up_to_km: 5
//	    tariff: "10.00"
//	beyond_tariff: "50.00"
//	free_weight_grams: 500
//	weight_band_grams: 500
//	surcharge_per_band: "5.00"
type tariffPolicyFile struct {
	Tiers []struct {
		UpToKm float64 `yaml:"up_to_km"`
		Tariff string  `yaml:"tariff"`
	} `yaml:"tiers"`
	BeyondTariff     *string `yaml:"beyond_tariff"`
	FreeWeightGrams  *int    `yaml:"free_weight_grams"`
	WeightBandGrams  *int    `yaml:"weight_band_grams"`
	SurchargePerBand *string `yaml:"surcharge_per_band"`
}

// LoadTariffPolicy returns tariff.DefaultPolicy when path is empty, otherwise
// the defaults overridden by the YAML file. The result is validated.
func LoadTariffPolicy(path string) (tariff.Policy, error) {
	if path == "" {
		return tariff.DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tariff.Policy{}, fmt.Errorf("reading tariff policy: %w", err)
	}

	return ParseTariffPolicy(bytes.NewReader(data))
}

// ParseTariffPolicy decodes a YAML tariff policy. Unknown keys are rejected.
func ParseTariffPolicy(r io.Reader) (tariff.Policy, error) {
	var file tariffPolicyFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return tariff.Policy{}, fmt.Errorf("parsing tariff policy: %w", err)
	}

	policy := tariff.DefaultPolicy()
	var errList []error

	if len(file.Tiers) > 0 {
		policy.Tiers = make([]tariff.Tier, 0, len(file.Tiers))
		for i, t := range file.Tiers {
			amount, err := decimal.NewFromString(t.Tariff)
			if err != nil {
				errList = append(errList, fmt.Errorf("tiers[%d].tariff: %w", i, err))
				continue
			}
			policy.Tiers = append(policy.Tiers, tariff.Tier{UpToKm: t.UpToKm, Tariff: amount})
		}
	}
	if file.BeyondTariff != nil {
		amount, err := decimal.NewFromString(*file.BeyondTariff)
		if err != nil {
			errList = append(errList, fmt.Errorf("beyond_tariff: %w", err))
		} else {
			policy.BeyondTariff = amount
		}
	}
	if file.FreeWeightGrams != nil {
		policy.FreeWeightGrams = *file.FreeWeightGrams
	}
	if file.WeightBandGrams != nil {
		policy.WeightBandGrams = *file.WeightBandGrams
	}
	if file.SurchargePerBand != nil {
		amount, err := decimal.NewFromString(*file.SurchargePerBand)
		if err != nil {
			errList = append(errList, fmt.Errorf("surcharge_per_band: %w", err))
		} else {
			policy.SurchargePerBand = amount
		}
	}

	if err := errors.Join(errList...); err != nil {
		return tariff.Policy{}, err
	}
	if err := policy.Validate(); err != nil {
		return tariff.Policy{}, err
	}
	return policy, nil
}
