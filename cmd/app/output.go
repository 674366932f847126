package main

import (
	"encoding/json"
	"fmt"
	"hotelier/shared/constant"

	"gopkg.in/yaml.v3"
)

type statusResponse struct {
	Message string `json:"message" yaml:"message"`
}

func (a *app) render(v any) error {
	var (
		data []byte
		err  error
	)

	switch a.output {
	case constant.OutputFormatJSON:
		data, err = json.MarshalIndent(v, constant.Empty, constant.DocumentIndent)
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if _, err = a.out.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
