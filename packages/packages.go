package packages

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"savoria/db"
	"savoria/models"
	"savoria/rdx"
	"savoria/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const listCacheKey = "packages:all"

// ListPackages serves the catalog, preferring the Redis copy. The cache
// is invalidated on every write.
func ListPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.PackagesCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cur.Close(ctx)

	pkgs := []models.PackageOption{}
	if err := cur.All(ctx, &pkgs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload, _ := json.Marshal(utils.M{"success": true, "packages": pkgs})
	_ = rdx.RdxSetWithTTL(listCacheKey, string(payload), 5*time.Minute)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var pkg models.PackageOption
	err := db.PackagesCollection.FindOne(ctx, bson.M{"packageId": ps.ByName("id")}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "package": pkg})
}

func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pkg models.PackageOption
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if pkg.Name == "" || pkg.PricePerHead.Int() <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and pricePerHead are required")
		return
	}

	pkg.PackageID = "pkg-" + utils.GenerateRandomString(12)
	pkg.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PackagesCollection.InsertOne(ctx, pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rdx.RdxDel(listCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "package": pkg})
}

func UpdatePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var pkg models.PackageOption
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"name":         pkg.Name,
		"pricePerHead": pkg.PricePerHead,
		"inclusions":   pkg.Inclusions,
		"eventType":    pkg.EventType,
		"category":     pkg.Category,
		"minPax":       pkg.MinPax,
		"maxPax":       pkg.MaxPax,
	}
	res, err := db.PackagesCollection.UpdateOne(ctx,
		bson.M{"packageId": ps.ByName("id")},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	rdx.RdxDel(listCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Package updated"})
}

func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.DeleteOne(ctx, bson.M{"packageId": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	rdx.RdxDel(listCacheKey)
	w.WriteHeader(http.StatusNoContent)
}
