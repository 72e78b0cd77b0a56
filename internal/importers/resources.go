package importers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/directory"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/progress"
)

// ParseResources decodes a resource file. Entries that cannot become a
// valid resource are reported in problems and left out; err is only set
// when the document itself is unreadable.
func ParseResources(r io.Reader) (resources []content.Resource, problems []string, err error) {
	var f ResourceFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("decoding resource file: %w", err)
	}

	for i, e := range f.Resources {
		res, err := e.resource()
		if err != nil {
			problems = append(problems, fmt.Sprintf("entry %d (%s): %v", i+1, e.Name, err))
			continue
		}
		resources = append(resources, res)
	}
	return resources, problems, nil
}

func (e ResourceEntry) resource() (content.Resource, error) {
	t := func(s string) string { return strings.TrimSpace(s) }
	res := content.Resource{
		Name:               t(e.Name),
		NameZhTW:           t(e.NameZhTW),
		NameZhCN:           t(e.NameZhCN),
		Description:        t(e.Description),
		DescriptionZhTW:    t(e.DescriptionZhTW),
		DescriptionZhCN:    t(e.DescriptionZhCN),
		Contact:            t(e.Contact),
		Location:           t(e.Location),
		OperatingHours:     t(e.OperatingHours),
		OperatingHoursZhTW: t(e.OperatingHoursZhTW),
		OperatingHoursZhCN: t(e.OperatingHoursZhCN),
		Website:            t(e.Website),
		IsDynamic:          true,
	}
	if res.Name == "" {
		return res, errors.New("name is required")
	}

	typ, ok := matchType(e.Type)
	if !ok {
		return res, fmt.Errorf("unknown type %q", e.Type)
	}
	res.Type = typ

	region, ok := matchRegion(e.Region)
	if !ok {
		return res, fmt.Errorf("unknown region %q", e.Region)
	}
	res.Region = region
	return res, nil
}

// matchType accepts a resource type in any case, e.g. "legal aid".
func matchType(s string) (content.ResourceType, bool) {
	s = strings.TrimSpace(s)
	for _, rt := range content.ResourceTypes() {
		if strings.EqualFold(string(rt), s) {
			return rt, true
		}
	}
	return "", false
}

func matchRegion(s string) (content.Region, bool) {
	s = strings.TrimSpace(s)
	for _, r := range content.Regions() {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// key identifies an organization across the static directory and stored
// entries.
func key(r content.Resource) string {
	return strings.ToLower(strings.TrimSpace(r.Name)) + "|" + strings.ToLower(strings.TrimSpace(r.Location))
}

// Import creates each resource through the library, skipping any that are
// already listed (same name and location). rep may be nil.
func Import(ctx context.Context, lib *content.Library, fb *mode.Fallback, resources []content.Resource, rep progress.Reporter) (ImportResult, error) {
	res := ImportResult{ItemsFound: len(resources)}

	seen := make(map[string]bool)
	for _, r := range directory.All() {
		seen[key(r)] = true
	}
	stored, _, err := lib.AdminResources(ctx, fb)
	if err != nil {
		return res, fmt.Errorf("reading stored resources: %w", err)
	}
	for _, r := range stored {
		seen[key(r)] = true
	}

	if rep == nil {
		rep = progress.Discard{}
	}
	rep.Start(len(resources), "Importing resources")
	defer rep.Finish()

	for i, r := range resources {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rep.Update(i+1, r.Name)

		k := key(r)
		if seen[k] {
			res.ItemsSkipped++
			continue
		}
		out, err := lib.CreateResource(ctx, fb, r)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", r.Name, err))
			continue
		}
		seen[k] = true
		res.ItemsImported++
		res.IDs = append(res.IDs, out.ID)
		res.Preview = res.Preview || out.Preview
	}
	return res, nil
}
