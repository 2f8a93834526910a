package util
import (
	"os"
	"strings"
	"path/filepath"
)

func PickFileAtRandom( files []string ) (string, []string) {
	idx := RandInt( len(files) )
	file := files[idx]
	files = append( files[:idx], files[idx+1:]... )
	return file, files
}

// ReadFiles lists the regular files of folder whose extension is supported,
// case-insensitively.
func ReadFiles( folder string, supportedExtensions []string ) ([]string, error) {
	allFiles, err := os.ReadDir( folder )
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower( f.Name() )
		for _, ext := range supportedExtensions {
			if strings.HasSuffix( name, "." + strings.ToLower( ext ) ) == true {
				result = append( result, filepath.Join( folder, f.Name() ) )
				break
			}
		}
	}
	return result, nil
}
