package model

// Port is an endpoint of a liaison.  The port table only carries a
// name; everything else about a crossing lives on the liaison and
// trajet rows.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name of the port (e.g. "Le Palais").
type Port struct {
	ID   uint64 // port.id
	Name string // port.nom
}

// Sector groups liaisons for browsing (e.g. "Belle-Île-en-Mer").
type Sector struct {
	ID   uint64 // secteur.id
	Name string // secteur.nom
}
