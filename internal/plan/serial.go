package plan

import "github.com/newsnet-africa/netabase-sub001/internal/schema"

// SelectSerialization decides the codec behavior emitted for a type: native
// binary by default, the compatibility codec when serde_compat is set. The
// fallback decode path is emitted in both modes so payloads written under the
// other mode remain readable across schema versions.
func SelectSerialization(m *schema.Model) Serialization {
	return Serialization{
		Compat:     m.Container.SerdeCompat,
		DualDecode: true,
	}
}
