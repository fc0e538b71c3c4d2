package authz

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PermissionSet mapa de permisos por pantalla y sub-acción. El cero value
// es un mapa vacío utilizable. Los maps internos no se exponen: toda
// consulta pasa por CanAccess/CanDo para que la normalización
// (sub-acción nunca concedida con padre negado) sea autoritativa.
type PermissionSet struct {
	screens map[ScreenKey]bool
	subs    map[SubActionKey]bool
}

// NewPermissionSet construye un mapa vacío.
func NewPermissionSet() *PermissionSet {
	return &PermissionSet{
		screens: make(map[ScreenKey]bool),
		subs:    make(map[SubActionKey]bool),
	}
}

// SetScreen concede o niega una pantalla. Las pseudo-pantallas (logout)
// no se almacenan.
func (p *PermissionSet) SetScreen(key ScreenKey, allowed bool) {
	if key == ScreenLogout {
		return
	}
	if p.screens == nil {
		p.screens = make(map[ScreenKey]bool)
	}
	p.screens[key] = allowed
}

// SetSubAction concede o niega una sub-acción.
func (p *PermissionSet) SetSubAction(key SubActionKey, allowed bool) {
	if p.subs == nil {
		p.subs = make(map[SubActionKey]bool)
	}
	p.subs[key] = allowed
}

// IsEmpty reporta si no hay ninguna entrada almacenada. Un mapa vacío
// hace que la evaluación caiga al nivel de acceso grueso.
func (p *PermissionSet) IsEmpty() bool {
	return p == nil || (len(p.screens) == 0 && len(p.subs) == 0)
}

// CanAccess decide si la pantalla está permitida. Función total: siempre
// devuelve bool. dashboard y logout están permitidas para toda identidad
// autenticada.
func (p *PermissionSet) CanAccess(key ScreenKey) bool {
	if key.Implicit() {
		return true
	}
	if p == nil {
		return false
	}
	return p.screens[key]
}

// CanDo decide si la sub-acción está permitida. Nunca concede una
// sub-acción cuya pantalla padre está negada, aunque el flag almacenado
// sea true: la UI deshabilita el checkbox, pero la decisión autoritativa
// está aquí.
func (p *PermissionSet) CanDo(key SubActionKey) bool {
	if p == nil {
		return false
	}
	if !p.CanAccess(key.Parent()) {
		return false
	}
	return p.subs[key]
}

// Normalize devuelve una copia donde toda sub-acción con padre negado
// queda en false. Se aplica antes de persistir y antes de emitir el mapa
// al cliente, para que nunca viaje un flag huérfano.
func (p *PermissionSet) Normalize() *PermissionSet {
	out := NewPermissionSet()
	if p == nil {
		return out
	}
	for k, v := range p.screens {
		out.screens[k] = v
	}
	for k, v := range p.subs {
		out.subs[k] = v && p.CanAccess(k.Parent())
	}
	return out
}

// Effective calcula los permisos efectivos de un usuario.
// Sin mapa almacenado (nil o vacío) se sintetiza desde el nivel de
// acceso: full concede todas las pantallas, partial solo las implícitas.
// Con mapa almacenado se devuelve normalizado.
func Effective(access Access, stored *PermissionSet) *PermissionSet {
	if stored.IsEmpty() {
		out := NewPermissionSet()
		allowed := access == AccessFull
		for _, s := range screens {
			out.screens[s] = allowed
		}
		if allowed {
			for sub := range subActionParents {
				out.subs[sub] = true
			}
		}
		return out
	}
	return stored.Normalize()
}

// ── Representación JSON ──────────────────────────────────────────────
//
// Formato de cable (y de la columna jsonb):
//
//	{
//	  "payments": false,
//	  "manageUsers": {"enabled": true, "addUser": true, "editUser": false}
//	}
//
// Una pantalla sin sub-acciones serializa como bool; manageUsers y
// manageProducts aceptan bool u objeto con "enabled" + sub-acciones.
// Claves desconocidas son un error de deserialización.

const enabledField = "enabled"

// MarshalJSON serializa el mapa en el formato de cable.
func (p *PermissionSet) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	doc := make(map[string]any, len(p.screens))
	for screen, allowed := range p.screens {
		subs := SubActionsOf(screen)
		if len(subs) == 0 {
			doc[string(screen)] = allowed
			continue
		}
		obj := map[string]any{enabledField: allowed}
		for _, sub := range subs {
			if v, ok := p.subs[sub]; ok {
				obj[string(sub)] = v
			}
		}
		if len(obj) == 1 {
			// Sin flags de sub-acción: serializar plano.
			doc[string(screen)] = allowed
			continue
		}
		doc[string(screen)] = obj
	}
	return json.Marshal(doc)
}

// UnmarshalJSON deserializa el formato de cable rechazando claves fuera
// del conjunto cerrado y sub-acciones bajo el padre equivocado.
func (p *PermissionSet) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("permisos: %w", err)
	}
	set := NewPermissionSet()

	// Orden estable para mensajes de error deterministas.
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		screen := ScreenKey(k)
		if !screen.Valid() || screen == ScreenLogout {
			return fmt.Errorf("permisos: pantalla desconocida %q", k)
		}
		raw := doc[k]

		var flag bool
		if err := json.Unmarshal(raw, &flag); err == nil {
			set.SetScreen(screen, flag)
			continue
		}

		var obj map[string]bool
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("permisos: valor inválido para %q", k)
		}
		if len(SubActionsOf(screen)) == 0 {
			return fmt.Errorf("permisos: %q no admite sub-acciones", k)
		}
		enabled, ok := obj[enabledField]
		if !ok {
			return fmt.Errorf("permisos: falta %q en %q", enabledField, k)
		}
		set.SetScreen(screen, enabled)
		for field, v := range obj {
			if field == enabledField {
				continue
			}
			sub := SubActionKey(field)
			if !sub.Valid() || sub.Parent() != screen {
				return fmt.Errorf("permisos: sub-acción desconocida %q en %q", field, k)
			}
			set.SetSubAction(sub, v)
		}
	}

	*p = *set
	return nil
}
