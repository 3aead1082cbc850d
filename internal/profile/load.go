package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// LoadMode controls how errors are handled during profile loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Error codes for LoadError.
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeNoFiles          = "NO_FILES"
	ErrCodeBuildFailed      = "BUILD_FAILED"
	ErrCodeDecodeFailed     = "DECODE_FAILED"
	ErrCodeInvalidProfile   = "INVALID_PROFILE"
	ErrCodeDuplicateProfile = "DUPLICATE_PROFILE"
)

// LoadError represents an error that occurred during profile loading.
type LoadError struct {
	Code    string
	Message string
	File    string // source file if available
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadResult contains the profiles loaded from a directory.
type LoadResult struct {
	Profiles  []Profile
	FileCount int
}

// Load reads every *.cue file in dir (non-recursive, lexicographic order for
// determinism), compiles it, and decodes its top-level `profile` field.
// Each file declares exactly one profile; names must be unique across the
// directory.
//
// If mode is LoadModeFailFast, returns on the first error.
// If mode is LoadModeCollectAll, collects all errors; valid profiles are
// still returned alongside them.
func Load(dir string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("profiles directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing profiles directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	files, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	result := &LoadResult{FileCount: len(files)}
	var errs []error
	seen := make(map[string]string) // profile name -> file

	ctx := cuecontext.New()
	for _, file := range files {
		p, err := loadFile(ctx, file)
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}

		if prev, dup := seen[p.Name]; dup {
			errs = append(errs, &LoadError{
				Code:    ErrCodeDuplicateProfile,
				Message: fmt.Sprintf("profile %q already defined in %s", p.Name, prev),
				File:    file,
			})
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		seen[p.Name] = file
		result.Profiles = append(result.Profiles, p)
	}

	return result, errs
}

// loadFile compiles a single CUE file and decodes its profile.
func loadFile(ctx *cue.Context, file string) (Profile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Profile{}, &LoadError{Code: ErrCodeNotFound, Message: err.Error(), File: file}
	}

	value := ctx.CompileBytes(data, cue.Filename(file))
	if err := value.Err(); err != nil {
		return Profile{}, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err), File: file}
	}

	pv := value.LookupPath(cue.ParsePath("profile"))
	if !pv.Exists() {
		return Profile{}, &LoadError{Code: ErrCodeDecodeFailed, Message: "no top-level `profile` field", File: file}
	}

	var p Profile
	if err := pv.Decode(&p); err != nil {
		return Profile{}, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding profile: %v", err), File: file}
	}

	if err := p.Validate(); err != nil {
		var le *LoadError
		if ok := asLoadError(err, &le); ok {
			le.File = file
			return Profile{}, le
		}
		return Profile{}, &LoadError{Code: ErrCodeInvalidProfile, Message: err.Error(), File: file}
	}

	return p, nil
}

func asLoadError(err error, target **LoadError) bool {
	le, ok := err.(*LoadError)
	if ok {
		*target = le
	}
	return ok
}

// findCUEFiles returns the *.cue files directly under dir in lexicographic
// order so load results are deterministic.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".cue") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
