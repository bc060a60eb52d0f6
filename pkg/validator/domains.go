package validator

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/agext/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var defaultDomainsYAML []byte

// DomainRegistry answers two questions about an email domain: whether it
// belongs to a throwaway mailbox service and whether it looks like a
// misspelled popular provider. A registry is read-only after construction
// and safe for concurrent use.
type DomainRegistry struct {
	disposable     map[string]struct{}
	typos          map[string]string
	providers      []string
	knownProviders map[string]struct{}
	fuzzyMinLength int
}

type registryDocument struct {
	Disposable     []string          `yaml:"disposable"`
	Typos          map[string]string `yaml:"typos"`
	Providers      []string          `yaml:"providers"`
	FuzzyMinLength int               `yaml:"fuzzy_min_length"`
}

var (
	defaultRegistry     *DomainRegistry
	defaultRegistryOnce sync.Once
)

// DefaultDomains returns the registry built from the embedded domain list.
func DefaultDomains() *DomainRegistry {
	defaultRegistryOnce.Do(func() {
		reg, err := ParseDomains(defaultDomainsYAML)
		if err != nil {
			panic(fmt.Sprintf("validator: embedded domain registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// LoadDomains reads a YAML registry document from r.
func LoadDomains(r io.Reader) (*DomainRegistry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	return ParseDomains(data)
}

// LoadDomainsFile reads a YAML registry document from path.
func LoadDomainsFile(path string) (*DomainRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	defer f.Close()
	return LoadDomains(f)
}

// ParseDomains builds a registry from a YAML document with the keys
// disposable, typos, providers and fuzzy_min_length.
func ParseDomains(data []byte) (*DomainRegistry, error) {
	var doc registryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	reg := &DomainRegistry{
		disposable:     make(map[string]struct{}, len(doc.Disposable)),
		typos:          make(map[string]string, len(doc.Typos)),
		knownProviders: make(map[string]struct{}, len(doc.Providers)),
		fuzzyMinLength: doc.FuzzyMinLength,
	}

	for _, d := range doc.Disposable {
		if d = normalizeDomain(d); d != "" {
			reg.disposable[d] = struct{}{}
		}
	}
	for typo, fix := range doc.Typos {
		typo, fix = normalizeDomain(typo), normalizeDomain(fix)
		if typo == "" || fix == "" {
			return nil, fmt.Errorf("%w: empty typo mapping %q", ErrInvalidRegistry, typo)
		}
		reg.typos[typo] = fix
	}
	for _, p := range doc.Providers {
		if p = normalizeDomain(p); p != "" {
			reg.providers = append(reg.providers, p)
			reg.knownProviders[p] = struct{}{}
		}
	}

	return reg, nil
}

// IsDisposable reports whether domain or any of its parent domains is a
// throwaway mailbox service.
func (r *DomainRegistry) IsDisposable(domain string) bool {
	d := normalizeDomain(domain)
	for d != "" {
		if _, ok := r.disposable[d]; ok {
			return true
		}
		_, parent, found := strings.Cut(d, ".")
		if !found || !strings.Contains(parent, ".") {
			return false
		}
		d = parent
	}
	return false
}

// Suggest returns the provider domain the user most likely meant. Listed
// providers never get a suggestion. Explicit typo mappings win over fuzzy
// matches, which only consider providers of at least fuzzy_min_length
// characters one edit away.
func (r *DomainRegistry) Suggest(domain string) (string, bool) {
	d := normalizeDomain(domain)
	if d == "" {
		return "", false
	}
	if _, ok := r.knownProviders[d]; ok {
		return "", false
	}
	if fix, ok := r.typos[d]; ok {
		return fix, true
	}
	if r.fuzzyMinLength <= 0 {
		return "", false
	}

	for _, p := range r.providers {
		if len(p) < r.fuzzyMinLength {
			continue
		}
		if levenshtein.Distance(d, p, nil) == 1 {
			return p, true
		}
	}
	return "", false
}

func normalizeDomain(domain string) string {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), ".")
	if ascii, ok := asciiDomain(domain); ok {
		return ascii
	}
	return strings.ToLower(domain)
}
