package model

// RelationshipConfiguration is the design-time form of a relationship.
type RelationshipConfiguration struct {
	Relationship  string `yaml:"Relationship" json:"Relationship"`
	Dependency    string `yaml:"Dependency" json:"Dependency"`
	Type          string `yaml:"Type,omitempty" json:"Type,omitempty"`
	Element       string `yaml:"Element" json:"Element"`
	Version       string `yaml:"Version" json:"Version"`
	Configuration string `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
}

// ClusterConfiguration is the design-time form of a cluster.
type ClusterConfiguration struct {
	Version       string                                `yaml:"Version" json:"Version"`
	State         string                                `yaml:"State,omitempty" json:"State,omitempty"`
	Min           int                                   `yaml:"Min" json:"Min"`
	Max           int                                   `yaml:"Max" json:"Max"`
	Size          int                                   `yaml:"Size" json:"Size"`
	Configuration string                                `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
	Relationships map[string]*RelationshipConfiguration `yaml:"Relationships" json:"Relationships"`
}

// ElementConfiguration is the design-time form of an element.
type ElementConfiguration struct {
	Element       string                           `yaml:"Element" json:"Element"`
	Component     string                           `yaml:"Component" json:"Component"`
	Configuration string                           `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
	Clusters      map[string]*ClusterConfiguration `yaml:"Clusters" json:"Clusters"`
}

// Architecture describes the intended shape of a solution.
type Architecture struct {
	Architecture string                           `yaml:"Architecture,omitempty" json:"Architecture,omitempty"`
	Version      string                           `yaml:"Version,omitempty" json:"Version,omitempty"`
	Elements     map[string]*ElementConfiguration `yaml:"Elements" json:"Elements"`
}

// Solution converts the architecture into a solution-shaped document.
// A cluster's State becomes both its State and its Target. Nil entries are
// skipped and left for Solution.Validate to report on the original keys.
func (a *Architecture) Solution() *Solution {
	s := &Solution{
		Solution: a.Architecture,
		Version:  a.Version,
		Elements: make(map[string]*Element, len(a.Elements)),
	}
	for name, ec := range a.Elements {
		if ec == nil {
			s.Elements[name] = nil
			continue
		}
		e := &Element{
			Element:       ec.Element,
			Component:     ec.Component,
			Configuration: ec.Configuration,
			Clusters:      make(map[string]*Cluster, len(ec.Clusters)),
		}
		for version, cc := range ec.Clusters {
			if cc == nil {
				e.Clusters[version] = nil
				continue
			}
			c := &Cluster{
				Version:       cc.Version,
				Target:        cc.State,
				State:         cc.State,
				Min:           cc.Min,
				Max:           cc.Max,
				Size:          cc.Size,
				Configuration: cc.Configuration,
				Relationships: make(map[string]*Relationship, len(cc.Relationships)),
			}
			for rname, rc := range cc.Relationships {
				if rc == nil {
					c.Relationships[rname] = nil
					continue
				}
				c.Relationships[rname] = &Relationship{
					Relationship:  rc.Relationship,
					Dependency:    rc.Dependency,
					Type:          rc.Type,
					Element:       rc.Element,
					Version:       rc.Version,
					Configuration: rc.Configuration,
				}
			}
			e.Clusters[version] = c
		}
		s.Elements[name] = e
	}
	return s
}
