package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/piwi3910/PaintCalc/internal/model"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/job.schema.json
var jobSchemaJSON []byte

const jobSchemaURL = "job.schema.json"

var (
	jobSchemaOnce sync.Once
	jobSchema     *jsonschema.Schema
	jobSchemaErr  error
)

func compiledJobSchema() (*jsonschema.Schema, error) {
	jobSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(jobSchemaURL, bytes.NewReader(jobSchemaJSON)); err != nil {
			jobSchemaErr = fmt.Errorf("failed to add job schema: %w", err)
			return
		}
		jobSchema, jobSchemaErr = compiler.Compile(jobSchemaURL)
	})
	return jobSchema, jobSchemaErr
}

// LoadJobFile reads a job description from a YAML or JSON file.
// Walls without a coat count get defaultCoats.
func LoadJobFile(path string, defaultCoats int) (model.JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.JobSpec{}, fmt.Errorf("failed to read job file: %w", err)
	}
	spec, err := ParseJob(data, defaultCoats)
	if err != nil {
		return model.JobSpec{}, fmt.Errorf("job file %s: %w", path, err)
	}
	return spec, nil
}

// ParseJob validates job data against the job schema and decodes it.
// JSON is accepted as a subset of YAML.
func ParseJob(data []byte, defaultCoats int) (model.JobSpec, error) {
	if err := ValidateJob(data); err != nil {
		return model.JobSpec{}, err
	}
	var spec model.JobSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return model.JobSpec{}, fmt.Errorf("failed to decode job: %w", err)
	}
	if defaultCoats < 1 {
		defaultCoats = 1
	}
	for ri := range spec.Rooms {
		for wi := range spec.Rooms[ri].Walls {
			if spec.Rooms[ri].Walls[wi].Coats == 0 {
				spec.Rooms[ri].Walls[wi].Coats = defaultCoats
			}
		}
	}
	return spec, nil
}

// ValidateJob checks job data against the embedded JSON schema.
func ValidateJob(data []byte) error {
	schema, err := compiledJobSchema()
	if err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse job: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("job is empty")
	}
	// Round-trip through JSON so YAML scalars take the JSON types the
	// validator expects.
	doc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to parse job: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(doc, &normalized); err != nil {
		return fmt.Errorf("failed to parse job: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("job does not match schema: %w", err)
	}
	return nil
}

// SaveJobFile writes a job description as YAML. It is used to turn an
// imported spreadsheet or drawing into an editable job file.
func SaveJobFile(path string, spec model.JobSpec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
