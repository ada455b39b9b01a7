package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestEditModeGateBlocksMutations(t *testing.T) {
	app, st := newApp(t)
	s := newSession(t, app)
	s.get("/")

	resp := s.postForm("/admin/products/new", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 without edit mode, got %d", resp.StatusCode)
	}
	if len(st.Products()) != 2 {
		t.Fatal("gated route must not mutate the catalog")
	}
}

func TestUnlockRejectsWrongCode(t *testing.T) {
	app, _ := newApp(t)
	s := newSession(t, app)
	s.get("/")

	resp := s.postForm("/admin/unlock", map[string]string{"code": "wrong"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 for wrong code, got %d", resp.StatusCode)
	}
}

func TestCreateUpdateDeleteProduct(t *testing.T) {
	app, st := newApp(t)
	s := newSession(t, app)
	s.unlock()

	// Create: prepended placeholder, redirect to its detail page.
	resp := s.postForm("/admin/products/new", nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("create failed with %d", resp.StatusCode)
	}
	products := st.Products()
	if len(products) != 3 || !strings.HasPrefix(products[0].ID, "new-") {
		t.Fatalf("placeholder not prepended: %+v", products)
	}
	newID := products[0].ID

	// Update fields.
	resp = s.postForm("/admin/products/"+newID, map[string]string{
		"name":      "Motor K20A",
		"brand":     "Honda",
		"price":     "1990000",
		"condition": "USED",
		"stock":     "2",
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("update failed with %d", resp.StatusCode)
	}
	p, ok := st.Product(newID)
	if !ok || p.Name != "Motor K20A" || p.Price != 1_990_000 || p.Condition != "USED" {
		t.Fatalf("update not applied: %+v", p)
	}

	// Delete without confirmation is a no-op.
	s.postForm("/admin/products/"+newID+"/delete", map[string]string{"confirm": "no"})
	if _, ok := st.Product(newID); !ok {
		t.Fatal("declined confirmation must not delete")
	}

	// Delete with confirmation removes it.
	s.postForm("/admin/products/"+newID+"/delete", map[string]string{"confirm": "yes"})
	if _, ok := st.Product(newID); ok {
		t.Fatal("confirmed delete should remove the product")
	}
}

func TestReorderEndpoint(t *testing.T) {
	app, st := newApp(t)
	s := newSession(t, app)
	s.unlock()

	resp := s.postForm("/admin/products/reorder", map[string]string{"sourceId": "mot-b", "targetId": "mot-a"})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("reorder failed with %d", resp.StatusCode)
	}
	products := st.Products()
	if products[0].ID != "mot-b" || products[1].ID != "mot-a" {
		t.Fatalf("reorder not applied: %s, %s", products[0].ID, products[1].ID)
	}
}

func TestExportSnapshotEndpoint(t *testing.T) {
	app, _ := newApp(t)
	s := newSession(t, app)
	s.unlock()

	resp := s.get("/admin/export")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export failed with %d", resp.StatusCode)
	}
	text := body(t, resp)
	if !strings.HasPrefix(text, "var seedProducts = [") {
		t.Fatalf("unexpected export shape: %.40q", text)
	}
	if !strings.Contains(text, `"mot-a"`) {
		t.Fatal("export should carry the catalog")
	}
}

func TestBranchEditSessionOnly(t *testing.T) {
	app, st := newApp(t)
	s := newSession(t, app)
	s.unlock()

	resp := s.postForm("/admin/branches/hospicio", map[string]string{
		"address": "Nueva Direccion 99",
		"phone":   "+56 9 1111 2222",
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("branch update failed with %d", resp.StatusCode)
	}
	b, _ := st.Branch("hospicio")
	if b.Address != "Nueva Direccion 99" {
		t.Fatalf("branch address not updated: %+v", b)
	}
}

func TestLockRestoresGate(t *testing.T) {
	app, _ := newApp(t)
	s := newSession(t, app)
	s.unlock()

	s.postForm("/admin/lock", nil)
	resp := s.postForm("/admin/products/new", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 after lock, got %d", resp.StatusCode)
	}
}
