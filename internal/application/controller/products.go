package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
)

// loadCatalogo trae productos e insumos en paralelo: la vista de
// administración necesita ambos (los insumos alimentan el editor de
// recetas) y ninguna de las dos llamadas depende de la otra.
func (c *Controller) loadCatalogo(ctx context.Context) error {
	var (
		productos  []entity.Producto
		insumos    []entity.Insumo
		errP, errI error
	)
	done := make(chan struct{}, 2)
	go func() {
		productos, errP = c.api.GetProducts(ctx, false)
		done <- struct{}{}
	}()
	go func() {
		insumos, errI = c.api.GetInsumos(ctx)
		done <- struct{}{}
	}()
	<-done
	<-done

	if errP != nil {
		c.toastError(errP)
		return errP
	}
	if errI != nil {
		c.toastError(errI)
		return errI
	}
	c.state.Catalogo = productos
	c.state.Insumos = insumos
	ui.RenderProductosTable(c.out, productos)
	return nil
}

// SaveProduct guarda el producto y después su receta, en dos llamadas.
// Si la segunda falla el producto ya quedó guardado sin receta: se
// avisa al usuario en lugar de intentar revertir.
func (c *Controller) SaveProduct(ctx context.Context, id string, data apiclient.ProductoData, receta []apiclient.BOMRow) error {
	if !c.state.beginOp("saveProduct") {
		return nil
	}
	defer c.state.endOp("saveProduct")

	var err error
	if id == "" {
		id, err = c.api.CreateProduct(ctx, data)
	} else {
		err = c.api.UpdateProduct(ctx, id, data)
	}
	if err != nil {
		c.toastError(err)
		return err
	}

	if err := c.api.SetBOM(ctx, id, receta); err != nil {
		c.log.Error().Err(err).Str("productId", id).Msg("producto guardado pero la receta falló")
		ui.Toast(c.out, "warning", "Producto guardado, pero la receta no se pudo guardar")
		return c.loadCatalogo(ctx)
	}

	ui.Toast(c.out, "success", "Producto guardado")
	return c.loadCatalogo(ctx)
}

// DeleteProduct elimina el producto indicado. La confirmación con el
// usuario ocurre antes de llamar aquí.
func (c *Controller) DeleteProduct(ctx context.Context, id string) error {
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Producto eliminado")
	return c.loadCatalogo(ctx)
}

// AdjustProductStock aplica un delta con signo al stock de un producto
// terminado. Mientras el ajuste está en vuelo no se acepta otro para el
// mismo producto.
func (c *Controller) AdjustProductStock(ctx context.Context, id string, delta decimal.Decimal) error {
	if !c.state.beginOp("pstock:" + id) {
		return nil
	}
	defer c.state.endOp("pstock:" + id)

	nuevo, err := c.api.UpdateProductStock(ctx, id, delta)
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Stock actualizado: "+nuevo.String())
	return c.loadCatalogo(ctx)
}

// RegisterProduction registra unidades producidas; el backend descuenta
// la materia prima de la receta.
func (c *Controller) RegisterProduction(ctx context.Context, id string, cantidad int) error {
	if !c.state.beginOp("produce:" + id) {
		return nil
	}
	defer c.state.endOp("produce:" + id)

	nuevo, err := c.api.RegisterProduction(ctx, id, cantidad)
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Producción registrada. Stock: "+nuevo.String())
	return c.loadCatalogo(ctx)
}

// BOMFor trae la receta actual para precargar el editor de producto.
func (c *Controller) BOMFor(ctx context.Context, id string) ([]entity.BOMEntry, error) {
	bom, err := c.api.GetBOM(ctx, id)
	if err != nil {
		c.toastError(err)
		return nil, err
	}
	return bom, nil
}
