package model

// Pessoa owns financial entries. Inactive people cannot receive new entries.
type Pessoa struct {
	Codigo int64  `json:"codigo"`
	Nome   string `json:"nome"`
	Ativo  bool   `json:"ativo"`
}

// Inativa reports whether p must be rejected as an entry owner.
func (p *Pessoa) Inativa() bool {
	return p == nil || !p.Ativo
}
