package memory

import "orcamentix/internal/domain/entities"

// Demo rows loaded when the fallback store starts empty, matching the
// registries a fresh install ships with.
func SeedClients() []entities.Client {
	return []entities.Client{
		{ID: "c1", Nome: "Maria Costa", Email: "maria@email.com", Telefone: "(11) 98888-1111", Empresa: "Residencial"},
		{ID: "c2", Nome: "João Santos", Email: "joao@email.com", Telefone: "(11) 97777-2222", Empresa: "JS Reformas"},
		{ID: "c3", Nome: "Ana Silva", Email: "ana@email.com", Telefone: "(21) 96666-3333", Empresa: "Cozinha & Cia"},
	}
}

func SeedServices() []entities.Service {
	return []entities.Service{
		{ID: "s1", Nome: "Pintura interna", Preco: 35.5, Unidade: "m²", Categoria: "Pintura"},
		{ID: "s2", Nome: "Instalação de vidro temperado", Preco: 420, Unidade: "m²", Categoria: "Vidraçaria"},
		{ID: "s3", Nome: "Montagem de móvel", Preco: 120, Unidade: "un", Categoria: "Marcenaria"},
	}
}
