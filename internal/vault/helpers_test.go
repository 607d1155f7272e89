package vault

import (
	"encoding/json"
	"os"
)

func writeJSONArray(path string, arr []int) error {
	data, err := json.Marshal(arr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func writeRawFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
