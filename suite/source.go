package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	yaml "gopkg.in/yaml.v3"

	"github.com/resultassert/resultassert/framework/helpers"
)

// SubstitutionSet maps names to the values that replace "<name>" in a suite file.
type SubstitutionSet map[string]ldvalue.Value

// SourceInfo is JSON or YAML data read from a file, after constants and parameters have been
// expanded. A parameterized file produces one SourceInfo per set of parameters.
type SourceInfo struct {
	FilePath string
	BaseName string
	Params   SubstitutionSet
	Data     []byte
}

func (s SourceInfo) ParseInto(target interface{}) error {
	if err := ParseJSONOrYAML(s.Data, target); err != nil {
		return fmt.Errorf("error parsing %q %s: %w", s.BaseName, s.ParamsString(), err)
	}
	return nil
}

// ParamsString describes the parameters in a stable order, or returns "" if there are none.
func (s SourceInfo) ParamsString() string {
	if len(s.Params) == 0 {
		return ""
	}
	ps := make([]string, 0, len(s.Params))
	for _, k := range helpers.SortedKeys(s.Params) {
		ps = append(ps, k+"="+s.Params[k].String())
	}
	return "(" + strings.Join(ps, ",") + ")"
}

// ParseJSONOrYAML unmarshals data as JSON if possible, and otherwise as YAML. YAML is converted
// to JSON first, so target only needs json tags.
func ParseJSONOrYAML(data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}
	var rawStructure interface{}
	if err := yaml.Unmarshal(data, &rawStructure); err != nil {
		return err
	}
	normalized, err := normalizeParsedYAMLForJSON(rawStructure)
	if err != nil {
		return err
	}
	jsonData, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, target)
}

func normalizeParsedYAMLForJSON(data interface{}) (interface{}, error) {
	switch data := data.(type) {
	case []interface{}:
		arrayOut := make([]interface{}, 0, len(data))
		for _, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			arrayOut = append(arrayOut, v1)
		}
		return arrayOut, nil
	case map[string]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[k] = v1
		}
		return mapOut, nil
	case map[interface{}]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("YAML data contained a map key of type %T; only string keys are allowed", k)
			}
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[key] = v1
		}
		return mapOut, nil
	default:
		return data, nil
	}
}

// ExpandSubstitutions applies the "constants" and "parameters" properties of a suite file.
//
// Every "<name>" in the file is replaced by the value of that constant or parameter. If the whole
// JSON string is "<name>", the value keeps its JSON type, so "<count>" can become a number. The
// parameters are either a list of sets, producing one copy of the file per set, or a list of
// lists of sets, producing one copy per permutation.
func ExpandSubstitutions(originalData []byte) ([]SourceInfo, error) {
	var substs struct {
		Constants  SubstitutionSet   `json:"constants"`
		Parameters []json.RawMessage `json:"parameters"`
	}
	if err := ParseJSONOrYAML(originalData, &substs); err != nil {
		return nil, err
	}
	data := originalData
	if len(substs.Constants) != 0 || len(substs.Parameters) != 0 {
		// Substitution works on text, so normalize YAML to JSON first.
		var raw interface{}
		if err := ParseJSONOrYAML(originalData, &raw); err != nil {
			return nil, err
		}
		data = helpers.AsJSON(raw)
	}
	if len(substs.Constants) == 0 && len(substs.Parameters) == 0 {
		return []SourceInfo{{Data: data}}, nil
	}
	parameterSets, err := makeParameterPermutations(substs.Parameters)
	if err != nil {
		return nil, err
	}
	if len(parameterSets) == 0 {
		return []SourceInfo{{Data: replaceVariables(data, substs.Constants)}}, nil
	}
	ret := make([]SourceInfo, 0, len(parameterSets))
	for _, paramsSet := range parameterSets {
		transformed := replaceVariables(data, substs.Constants)
		transformed = replaceVariables(transformed, paramsSet)
		transformed = replaceVariables(transformed, substs.Constants) // parameters can refer to constants
		ret = append(ret, SourceInfo{Data: transformed, Params: paramsSet})
	}
	return ret, nil
}

func makeParameterPermutations(paramsData []json.RawMessage) ([]SubstitutionSet, error) {
	if len(paramsData) == 0 {
		return nil, nil
	}
	allData, _ := json.Marshal(paramsData)
	switch ldvalue.Parse(paramsData[0]).Type() {
	case ldvalue.ObjectType:
		var list []SubstitutionSet
		if err := json.Unmarshal(allData, &list); err != nil {
			return nil, err
		}
		return list, nil
	case ldvalue.ArrayType:
	default:
		return nil, errors.New("unable to parse parameters - must be an array of objects or an array of arrays")
	}
	var lists [][]SubstitutionSet
	if err := json.Unmarshal(allData, &lists); err != nil {
		return nil, err
	}
	for _, list := range lists {
		if len(list) == 0 {
			return nil, errors.New("unable to parse parameters - a list of parameter sets was empty")
		}
	}
	indices := make([]int, len(lists))
	var result []SubstitutionSet
	for {
		mergedSet := make(SubstitutionSet)
		for i := range lists {
			for k, v := range lists[i][indices[i]] {
				mergedSet[k] = v
			}
		}
		result = append(result, mergedSet)
		incrementPos := 0
		for incrementPos < len(lists) {
			indices[incrementPos]++
			if indices[incrementPos] < len(lists[incrementPos]) {
				break
			}
			indices[incrementPos] = 0
			incrementPos++
		}
		if incrementPos == len(lists) {
			return result, nil
		}
	}
}

func replaceVariables(originalData []byte, substs SubstitutionSet) []byte {
	str := string(originalData)
	str = strings.ReplaceAll(str, `\u003c`, "<")
	str = strings.ReplaceAll(str, `\u003e`, ">")
	for _, name := range helpers.SortedKeys(substs) {
		value := substs[name]
		typedValueStr := value.JSONString()
		str = strings.ReplaceAll(str, `"<`+name+`>"`, typedValueStr)
		interpolatedValueStr := typedValueStr
		if value.IsString() {
			interpolatedValueStr = typedValueStr[1 : len(typedValueStr)-1] // keep JSON escaping inside a string
		}
		str = strings.ReplaceAll(str, "<"+name+">", interpolatedValueStr)
	}
	return []byte(str)
}

// ReadFile reads a suite file and expands its substitutions.
func ReadFile(path string) ([]SourceInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // yes, we know the file path is a variable
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	sources, err := ExpandSubstitutions(data)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	baseName := filepath.Base(path)
	for i := range sources {
		sources[i].FilePath = path
		sources[i].BaseName = baseName
	}
	return sources, nil
}

// ReadPath reads a suite file, or every .json, .yaml and .yml file in a directory in name order.
func ReadPath(path string) ([]SourceInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return ReadFile(path)
	}
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var ret []SourceInfo
	for _, file := range files {
		if file.IsDir() || !isSuiteFileName(file.Name()) {
			continue
		}
		sources, err := ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, err
		}
		ret = append(ret, sources...)
	}
	return ret, nil
}

func isSuiteFileName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
