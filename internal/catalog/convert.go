package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// The upstream checker publishes its question logic as one JSON document
// with questions_content and flags_content sections. Convert reshapes it
// into the YAML catalog layout.

type checkerFile struct {
	QuestionsContent map[string]checkerQuestion `json:"questions_content"`
	FlagsContent     map[string]json.RawMessage `json:"flags_content"`
}

type checkerQuestion struct {
	MainTitle      string                   `json:"main_title"`
	SecondaryTitle string                   `json:"secondary_title"`
	Info           string                   `json:"info"`
	Sources        string                   `json:"sources"`
	Answers        map[string]checkerAnswer `json:"answers"`
}

type checkerAnswer struct {
	Label        string   `json:"label"`
	Help         string   `json:"help"`
	NextQuestion string   `json:"next_question"`
	Flags        []string `json:"flags"`
}

type checkerFlag struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type convertedQuestion struct {
	ID       string            `yaml:"id"`
	Question string            `yaml:"question"`
	Info     string            `yaml:"info,omitempty"`
	Type     string            `yaml:"type"`
	Sources  string            `yaml:"sources,omitempty"`
	Options  []convertedOption `yaml:"options"`
}

type convertedOption struct {
	Value string   `yaml:"value"`
	Label string   `yaml:"label"`
	Help  string   `yaml:"help,omitempty"`
	Next  string   `yaml:"next,omitempty"`
	Flags []string `yaml:"flags,omitempty"`
}

type convertedResult struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description"`
}

type convertedFile struct {
	Metadata      Metadata                     `yaml:"metadata"`
	Questionnaire map[string]convertedQuestion `yaml:"questionnaire"`
	Results       map[string]convertedResult   `yaml:"results"`
}

// Convert reshapes the upstream JSON checker document into the YAML catalog
// layout. Questions with up to three answers become single choice, the rest
// multiple choice, mirroring the upstream converter.
func Convert(jsonData []byte, meta Metadata) ([]byte, error) {
	var file checkerFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("failed to parse checker JSON: %w", err)
	}

	out := convertedFile{
		Metadata:      meta,
		Questionnaire: map[string]convertedQuestion{},
		Results:       map[string]convertedResult{},
	}

	for qid, q := range file.QuestionsContent {
		prompt := q.SecondaryTitle
		if prompt == "" {
			prompt = q.MainTitle
		}

		choice := "multiple_choice"
		if len(q.Answers) <= 3 {
			choice = "single_choice"
		}

		entry := convertedQuestion{
			ID:       qid,
			Question: prompt,
			Info:     q.Info,
			Type:     choice,
			Sources:  q.Sources,
		}

		keys := make([]string, 0, len(q.Answers))
		for k := range q.Answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			ans := q.Answers[key]
			entry.Options = append(entry.Options, convertedOption{
				Value: key,
				Label: ans.Label,
				Help:  ans.Help,
				Next:  ans.NextQuestion,
				Flags: ans.Flags,
			})
		}

		out.Questionnaire[qid] = entry
	}

	for flagID, raw := range file.FlagsContent {
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			out.Results[flagID] = convertedResult{ID: flagID, Description: asString}
			continue
		}

		var asStruct checkerFlag
		if err := json.Unmarshal(raw, &asStruct); err != nil {
			return nil, fmt.Errorf("flag %s: unsupported content shape", flagID)
		}
		desc := asStruct.Description
		if desc == "" {
			desc = asStruct.Content
		}
		out.Results[flagID] = convertedResult{ID: flagID, Title: asStruct.Title, Description: desc}
	}

	return yaml.Marshal(out)
}
