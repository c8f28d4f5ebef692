// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/reqcntl/pkg/share"
	"github.com/walteh/reqcntl/pkg/status"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// hclConfig is the HCL schema of Config
type hclConfig struct {
	Manifest *struct {
		Pattern string   `hcl:"pattern,optional"`
		Exclude []string `hcl:"exclude,optional"`
	} `hcl:"manifest,block"`
	Share *struct {
		Root   string `hcl:"root,optional"`
		Source string `hcl:"source,optional"`
		Target string `hcl:"target,optional"`
	} `hcl:"share,block"`
	Ledger string `hcl:"ledger,optional"`
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_root":   cty.StringVal(share.DefaultRoot),
			"default_ledger": cty.StringVal(status.DefaultLedgerPath),
		},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{Ledger: hclCfg.Ledger}
	if hclCfg.Manifest != nil {
		cfg.Manifest = ManifestArgs{
			Pattern: hclCfg.Manifest.Pattern,
			Exclude: hclCfg.Manifest.Exclude,
		}
	}
	if hclCfg.Share != nil {
		cfg.Share = ShareArgs{
			Root:   hclCfg.Share.Root,
			Source: hclCfg.Share.Source,
			Target: hclCfg.Share.Target,
		}
	}

	return cfg, nil
}
